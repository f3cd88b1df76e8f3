package solvent

import (
	"net/http"
	"time"

	"github.com/solventhq/solvent-go/api"
	"github.com/solventhq/solvent-go/validate"
	"go.uber.org/zap"
)

// Config holds construction-time client settings. The client copies it at
// NewClient time and never mutates afterwards.
type Config struct {
	// APIKey authenticates every request. Required.
	APIKey string

	// Environment is "sandbox" (default) or "production".
	Environment string

	// BaseURL overrides environment resolution when set.
	BaseURL string

	// Timeout is the per-request budget. Defaults to 30 seconds.
	Timeout time.Duration

	// WebhookSecret is the default secret for webhook signature checks. A
	// per-call secret always takes precedence.
	WebhookSecret string

	// HTTPClient replaces the default transport. Mostly useful in tests.
	HTTPClient *http.Client

	// Logger receives request traces. Defaults to a nop logger.
	Logger *zap.Logger
}

// Client is the entry point to the Solvent API. Every resource hangs off a
// service field sharing one dispatcher.
type Client struct {
	Customers        *CustomersService
	ExternalAccounts *ExternalAccountsService
	VirtualAccounts  *VirtualAccountsService
	Transfers        *TransfersService
	Webhooks         *WebhooksService
	Files            *FilesService
	Developer        *DeveloperService
	CrossChain       *CrossChainService
	Wallets          *WalletsService

	api *api.Client
}

// NewClient builds a Client from config. The API key is required; the
// environment defaults to sandbox.
func NewClient(cfg Config) (*Client, error) {
	dispatcher, err := api.New(api.Config{
		APIKey:      cfg.APIKey,
		Environment: cfg.Environment,
		BaseURL:     cfg.BaseURL,
		Timeout:     cfg.Timeout,
		HTTPClient:  cfg.HTTPClient,
		Logger:      cfg.Logger,
	})
	if err != nil {
		return nil, err
	}

	v := validate.New()

	return &Client{
		Customers:        &CustomersService{api: dispatcher, validate: v},
		ExternalAccounts: &ExternalAccountsService{api: dispatcher, validate: v},
		VirtualAccounts:  &VirtualAccountsService{api: dispatcher, validate: v},
		Transfers:        &TransfersService{api: dispatcher, validate: v},
		Webhooks:         &WebhooksService{api: dispatcher, validate: v, defaultSecret: cfg.WebhookSecret},
		Files:            &FilesService{api: dispatcher},
		Developer:        &DeveloperService{api: dispatcher, validate: v},
		CrossChain:       &CrossChainService{api: dispatcher, validate: v},
		Wallets:          &WalletsService{api: dispatcher, validate: v},
		api:              dispatcher,
	}, nil
}

// BaseURL returns the resolved base URL the client dispatches against.
func (c *Client) BaseURL() string {
	return c.api.BaseURL()
}
