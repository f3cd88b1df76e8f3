package solvent

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/solventhq/solvent-go/api"
	"github.com/solventhq/solvent-go/validate"
)

// TransferEndpoint is one leg of a transfer: a payment rail plus the currency
// and, depending on the rail, either a bank account or a chain address.
type TransferEndpoint struct {
	PaymentRail       string `json:"payment_rail" validate:"required,oneof=ach wire sepa ethereum polygon base arbitrum solana"`
	Currency          string `json:"currency" validate:"required,oneof=usd eur usdc usdt dai"`
	ExternalAccountID string `json:"external_account_id,omitempty" validate:"omitempty,uuid"`
	FromAddress       string `json:"from_address,omitempty"`
	ToAddress         string `json:"to_address,omitempty"`
}

// TransferReceipt summarizes the settled amounts of a completed transfer.
type TransferReceipt struct {
	InitialAmount    string `json:"initial_amount"`
	DeveloperFee     string `json:"developer_fee,omitempty"`
	ExchangeFee      string `json:"exchange_fee,omitempty"`
	SubtotalAmount   string `json:"subtotal_amount,omitempty"`
	FinalAmount      string `json:"final_amount"`
	DestinationTxURL string `json:"destination_tx_url,omitempty"`
}

// Transfer is one movement of value between two rails.
type Transfer struct {
	ID          string            `json:"id"`
	State       string            `json:"state"`
	OnBehalfOf  string            `json:"on_behalf_of"`
	Amount      string            `json:"amount"`
	Source      *TransferEndpoint `json:"source,omitempty"`
	Destination *TransferEndpoint `json:"destination,omitempty"`
	Receipt     *TransferReceipt  `json:"receipt,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// TransferList is one page of transfers.
type TransferList struct {
	Count int        `json:"count"`
	Data  []Transfer `json:"data"`
}

// CreateTransferRequest initiates a transfer on behalf of a customer.
type CreateTransferRequest struct {
	Amount              string            `json:"amount" validate:"required,numeric"`
	OnBehalfOf          string            `json:"on_behalf_of" validate:"required,uuid"`
	Source              *TransferEndpoint `json:"source" validate:"required"`
	Destination         *TransferEndpoint `json:"destination" validate:"required"`
	DeveloperFeePercent string            `json:"developer_fee_percent,omitempty" validate:"omitempty,numeric"`
}

// TransfersService moves value between fiat and crypto rails.
type TransfersService struct {
	api      *api.Client
	validate *validate.Validator
}

// Create initiates a transfer.
func (s *TransfersService) Create(ctx context.Context, req *CreateTransferRequest) (*Transfer, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	var transfer Transfer
	if err := s.api.Do(ctx, http.MethodPost, "/transfers", req, &transfer); err != nil {
		return nil, err
	}
	return &transfer, nil
}

// Get fetches a transfer by id.
func (s *TransfersService) Get(ctx context.Context, id string) (*Transfer, error) {
	var transfer Transfer
	if err := s.api.Do(ctx, http.MethodGet, fmt.Sprintf("/transfers/%s", id), nil, &transfer); err != nil {
		return nil, err
	}
	return &transfer, nil
}

// List pages through transfers.
func (s *TransfersService) List(ctx context.Context, params *ListParams) (*TransferList, error) {
	var list TransferList
	if err := s.api.Do(ctx, http.MethodGet, listPath("/transfers", params), nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Delete cancels a transfer that has not yet settled.
func (s *TransfersService) Delete(ctx context.Context, id string) error {
	return s.api.Do(ctx, http.MethodDelete, fmt.Sprintf("/transfers/%s", id), nil, nil)
}
