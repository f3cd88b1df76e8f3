package solvent

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/solventhq/solvent-go/api"
	"github.com/solventhq/solvent-go/validate"
)

// account type discriminator values
const (
	AccountTypeIBAN = "iban"
	AccountTypeUS   = "us"
)

// ExternalAccount is a customer-owned bank account money can be paid out to.
type ExternalAccount struct {
	ID               string    `json:"id"`
	CustomerID       string    `json:"customer_id"`
	Currency         string    `json:"currency"`
	AccountType      string    `json:"account_type"`
	BankName         string    `json:"bank_name"`
	AccountOwnerName string    `json:"account_owner_name"`
	Last4            string    `json:"last_4"`
	Active           bool      `json:"active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ExternalAccountList is one page of external accounts.
type ExternalAccountList struct {
	Count int               `json:"count"`
	Data  []ExternalAccount `json:"data"`
}

// IBANDetails is the non-US bank routing variant.
type IBANDetails struct {
	AccountNumber string `json:"account_number" validate:"required,iban"`
	BIC           string `json:"bic" validate:"required,bic"`
	Country       string `json:"country" validate:"required,iso3166_1_alpha3"`
}

// USDetails is the US bank routing variant.
type USDetails struct {
	RoutingNumber     string `json:"routing_number" validate:"required,len=9,numeric"`
	AccountNumber     string `json:"account_number" validate:"required,numeric,min=4,max=17"`
	CheckingOrSavings string `json:"checking_or_savings,omitempty" validate:"omitempty,oneof=checking savings"`
}

// CreateExternalAccountRequest registers a bank account for a customer. The
// account_type discriminator selects exactly one routing variant: the matching
// detail object is required and the other must be absent.
type CreateExternalAccountRequest struct {
	Currency         string       `json:"currency" validate:"required,oneof=usd eur"`
	BankName         string       `json:"bank_name" validate:"required"`
	AccountOwnerName string       `json:"account_owner_name" validate:"required"`
	AccountOwnerType string       `json:"account_owner_type,omitempty" validate:"omitempty,oneof=individual business"`
	AccountType      string       `json:"account_type" validate:"required,oneof=iban us"`
	IBAN             *IBANDetails `json:"iban,omitempty" validate:"required_if=AccountType iban,excluded_unless=AccountType iban"`
	US               *USDetails   `json:"us,omitempty" validate:"required_if=AccountType us,excluded_unless=AccountType us"`
}

// ExternalAccountsService manages customer bank accounts.
type ExternalAccountsService struct {
	api      *api.Client
	validate *validate.Validator
}

// Create registers an external account under a customer.
func (s *ExternalAccountsService) Create(ctx context.Context, customerID string, req *CreateExternalAccountRequest) (*ExternalAccount, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	var account ExternalAccount
	path := fmt.Sprintf("/customers/%s/external_accounts", customerID)
	if err := s.api.Do(ctx, http.MethodPost, path, req, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// Get fetches one external account.
func (s *ExternalAccountsService) Get(ctx context.Context, customerID, id string) (*ExternalAccount, error) {
	var account ExternalAccount
	path := fmt.Sprintf("/customers/%s/external_accounts/%s", customerID, id)
	if err := s.api.Do(ctx, http.MethodGet, path, nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// List pages through a customer's external accounts.
func (s *ExternalAccountsService) List(ctx context.Context, customerID string, params *ListParams) (*ExternalAccountList, error) {
	var list ExternalAccountList
	path := listPath(fmt.Sprintf("/customers/%s/external_accounts", customerID), params)
	if err := s.api.Do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Delete removes an external account.
func (s *ExternalAccountsService) Delete(ctx context.Context, customerID, id string) error {
	path := fmt.Sprintf("/customers/%s/external_accounts/%s", customerID, id)
	return s.api.Do(ctx, http.MethodDelete, path, nil, nil)
}
