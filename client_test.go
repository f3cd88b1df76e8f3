package solvent_test

import (
	"net/http"
	"testing"

	"github.com/solventhq/solvent-go"
	"github.com/solventhq/solvent-go/api"
	"github.com/solventhq/solvent-go/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failIfCalled is a stub handler for tests asserting that local validation
// short-circuits before any request leaves the process.
func failIfCalled(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
	})
}

// requireFieldError asserts err is a *validate.FieldErrors flagging the field.
func requireFieldError(t *testing.T, err error, field string) {
	t.Helper()

	require.Error(t, err)
	var fieldErrs *validate.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.True(t, fieldErrs.Has(field), "expected field %q among %v", field, fieldErrs.Fields)
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := solvent.NewClient(solvent.Config{})
	require.Error(t, err)
}

func TestNewClientDefaultsToSandbox(t *testing.T) {
	client, err := solvent.NewClient(solvent.Config{APIKey: "sk-test"})
	require.NoError(t, err)
	assert.Equal(t, api.SandboxBaseURL, client.BaseURL())
}

func TestNewClientProduction(t *testing.T) {
	client, err := solvent.NewClient(solvent.Config{
		APIKey:      "sk-live",
		Environment: api.EnvironmentProduction,
	})
	require.NoError(t, err)
	assert.Equal(t, api.ProductionBaseURL, client.BaseURL())
}

func TestNewClientRejectsUnknownEnvironment(t *testing.T) {
	_, err := solvent.NewClient(solvent.Config{APIKey: "sk-test", Environment: "staging"})
	require.Error(t, err)
}

func TestNewClientWiresAllServices(t *testing.T) {
	client, err := solvent.NewClient(solvent.Config{APIKey: "sk-test"})
	require.NoError(t, err)

	assert.NotNil(t, client.Customers)
	assert.NotNil(t, client.ExternalAccounts)
	assert.NotNil(t, client.VirtualAccounts)
	assert.NotNil(t, client.Transfers)
	assert.NotNil(t, client.Webhooks)
	assert.NotNil(t, client.Files)
	assert.NotNil(t, client.Developer)
	assert.NotNil(t, client.CrossChain)
	assert.NotNil(t, client.Wallets)
}
