package solvent

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/solventhq/solvent-go/api"
	"github.com/solventhq/solvent-go/validate"
)

// ErrNoWebhookSecret is returned by Verify when neither a per-call secret nor
// a configured default secret is available. A missing secret is a
// configuration fault, not a verification verdict.
var ErrNoWebhookSecret = errors.New("no webhook secret configured")

// Webhook is a subscription delivering signed event payloads to a URL.
type Webhook struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Status    string    `json:"status"`
	Events    []string  `json:"events"`
	Secret    string    `json:"secret,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WebhookList is one page of webhooks.
type WebhookList struct {
	Count int       `json:"count"`
	Data  []Webhook `json:"data"`
}

// CreateWebhookRequest registers a delivery endpoint.
type CreateWebhookRequest struct {
	URL    string   `json:"url" validate:"required,url"`
	Events []string `json:"events" validate:"required,min=1,dive,oneof=customer.created customer.updated customer.deleted kyc.approved kyc.rejected virtual_account.activated virtual_account.deposit transfer.created transfer.updated transfer.completed transfer.failed"`
}

// UpdateWebhookRequest modifies a webhook subscription.
type UpdateWebhookRequest struct {
	URL    string   `json:"url,omitempty" validate:"omitempty,url"`
	Status string   `json:"status,omitempty" validate:"omitempty,oneof=active disabled"`
	Events []string `json:"events,omitempty" validate:"omitempty,min=1,dive,oneof=customer.created customer.updated customer.deleted kyc.approved kyc.rejected virtual_account.activated virtual_account.deposit transfer.created transfer.updated transfer.completed transfer.failed"`
}

// WebhooksService manages webhook subscriptions and authenticates inbound
// deliveries.
type WebhooksService struct {
	api           *api.Client
	validate      *validate.Validator
	defaultSecret string
}

// Create registers a webhook endpoint. The response carries the signing
// secret exactly once; store it.
func (s *WebhooksService) Create(ctx context.Context, req *CreateWebhookRequest) (*Webhook, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	var webhook Webhook
	if err := s.api.Do(ctx, http.MethodPost, "/webhooks", req, &webhook); err != nil {
		return nil, err
	}
	return &webhook, nil
}

// Get fetches a webhook by id.
func (s *WebhooksService) Get(ctx context.Context, id string) (*Webhook, error) {
	var webhook Webhook
	if err := s.api.Do(ctx, http.MethodGet, fmt.Sprintf("/webhooks/%s", id), nil, &webhook); err != nil {
		return nil, err
	}
	return &webhook, nil
}

// List pages through webhook subscriptions.
func (s *WebhooksService) List(ctx context.Context, params *ListParams) (*WebhookList, error) {
	var list WebhookList
	if err := s.api.Do(ctx, http.MethodGet, listPath("/webhooks", params), nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Update modifies a webhook subscription.
func (s *WebhooksService) Update(ctx context.Context, id string, req *UpdateWebhookRequest) (*Webhook, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	var webhook Webhook
	if err := s.api.Do(ctx, http.MethodPut, fmt.Sprintf("/webhooks/%s", id), req, &webhook); err != nil {
		return nil, err
	}
	return &webhook, nil
}

// Delete removes a webhook subscription.
func (s *WebhooksService) Delete(ctx context.Context, id string) error {
	return s.api.Do(ctx, http.MethodDelete, fmt.Sprintf("/webhooks/%s", id), nil, nil)
}

// Sign computes the hex-encoded HMAC-SHA256 digest of the exact raw payload
// bytes under the given secret. It is the signature the remote sender
// attaches to deliveries.
func Sign(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify authenticates an inbound webhook delivery. The payload must be the
// exact raw request body; any reserialization breaks the digest. An empty
// secret falls back to the secret configured at construction. A mismatched
// signature is a false verdict, never an error; the only error case is a
// wholly missing secret.
//
// The comparison is constant time: a length check first, then byte-wise
// constant-time equality, so an attacker cannot learn digest prefixes from
// response timing.
func (s *WebhooksService) Verify(payload []byte, signature, secret string) (bool, error) {
	if secret == "" {
		secret = s.defaultSecret
	}
	return VerifySignature(payload, signature, secret)
}

// VerifySignature is the standalone form of [WebhooksService.Verify] for
// callers that do not hold a client, such as webhook receivers.
func VerifySignature(payload []byte, signature, secret string) (bool, error) {
	if secret == "" {
		return false, ErrNoWebhookSecret
	}

	expected := Sign(payload, secret)
	if len(signature) != len(expected) {
		return false, nil
	}
	return subtle.ConstantTimeCompare([]byte(signature), []byte(expected)) == 1, nil
}
