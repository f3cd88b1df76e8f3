package solvent_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/solventhq/solvent-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validIBANAccountRequest() *solvent.CreateExternalAccountRequest {
	return &solvent.CreateExternalAccountRequest{
		Currency:         "eur",
		BankName:         "Deutsche Bank",
		AccountOwnerName: "Ada Lovelace",
		AccountType:      solvent.AccountTypeIBAN,
		IBAN: &solvent.IBANDetails{
			AccountNumber: "DE89370400440532013000",
			BIC:           "DEUTDEFF",
			Country:       "DEU",
		},
	}
}

func validUSAccountRequest() *solvent.CreateExternalAccountRequest {
	return &solvent.CreateExternalAccountRequest{
		Currency:         "usd",
		BankName:         "Chase",
		AccountOwnerName: "Ada Lovelace",
		AccountType:      solvent.AccountTypeUS,
		US: &solvent.USDetails{
			RoutingNumber: "021000021",
			AccountNumber: "123456789",
		},
	}
}

func TestCreateExternalAccountIBAN(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/customers/cust_1/external_accounts", r.URL.Path)

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "iban", req["account_type"])
		assert.Contains(t, req, "iban")
		assert.NotContains(t, req, "us")

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":           "ea_1",
			"customer_id":  "cust_1",
			"account_type": "iban",
			"last_4":       "3000",
			"active":       true,
		})
	})
	client := newTestClient(t, handler, solvent.Config{})

	account, err := client.ExternalAccounts.Create(context.Background(), "cust_1", validIBANAccountRequest())
	require.NoError(t, err)
	assert.Equal(t, "ea_1", account.ID)
	assert.Equal(t, "3000", account.Last4)
}

func TestCreateExternalAccountUS(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "us", req["account_type"])
		assert.Contains(t, req, "us")
		assert.NotContains(t, req, "iban")

		_ = json.NewEncoder(w).Encode(map[string]interface{}{"id": "ea_2", "account_type": "us"})
	})
	client := newTestClient(t, handler, solvent.Config{})

	account, err := client.ExternalAccounts.Create(context.Background(), "cust_1", validUSAccountRequest())
	require.NoError(t, err)
	assert.Equal(t, "ea_2", account.ID)
}

func TestCreateExternalAccountMissingVariantDetail(t *testing.T) {
	client := newTestClient(t, failIfCalled(t), solvent.Config{})

	req := validIBANAccountRequest()
	req.IBAN = nil

	_, err := client.ExternalAccounts.Create(context.Background(), "cust_1", req)
	requireFieldError(t, err, "iban")
}

func TestCreateExternalAccountCrossVariantDetail(t *testing.T) {
	client := newTestClient(t, failIfCalled(t), solvent.Config{})

	// iban discriminator with a us detail attached must flag the stray detail.
	req := validIBANAccountRequest()
	req.US = &solvent.USDetails{RoutingNumber: "021000021", AccountNumber: "123456789"}

	_, err := client.ExternalAccounts.Create(context.Background(), "cust_1", req)
	requireFieldError(t, err, "us")
}

func TestCreateExternalAccountBadRoutingNumber(t *testing.T) {
	client := newTestClient(t, failIfCalled(t), solvent.Config{})

	req := validUSAccountRequest()
	req.US.RoutingNumber = "1234"

	_, err := client.ExternalAccounts.Create(context.Background(), "cust_1", req)
	requireFieldError(t, err, "us.routing_number")
}

func TestCreateExternalAccountBadIBAN(t *testing.T) {
	client := newTestClient(t, failIfCalled(t), solvent.Config{})

	req := validIBANAccountRequest()
	req.IBAN.AccountNumber = "NOT-AN-IBAN"

	_, err := client.ExternalAccounts.Create(context.Background(), "cust_1", req)
	requireFieldError(t, err, "iban.account_number")
}

func TestListExternalAccounts(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customers/cust_1/external_accounts", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"count": 1,
			"data":  []map[string]string{{"id": "ea_1"}},
		})
	})
	client := newTestClient(t, handler, solvent.Config{})

	list, err := client.ExternalAccounts.List(context.Background(), "cust_1", nil)
	require.NoError(t, err)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "ea_1", list.Data[0].ID)
}

func TestDeleteExternalAccount(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/customers/cust_1/external_accounts/ea_1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})
	client := newTestClient(t, handler, solvent.Config{})

	require.NoError(t, client.ExternalAccounts.Delete(context.Background(), "cust_1", "ea_1"))
}
