package solvent

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/solventhq/solvent-go/api"
	"github.com/solventhq/solvent-go/validate"
)

// CrossChainTransfer moves an asset between two blockchain networks. The
// platform quotes and executes the bridge leg; the caller funds the source
// deposit address and later completes the transfer with the funding proof.
type CrossChainTransfer struct {
	ID                   string    `json:"id"`
	State                string    `json:"state"`
	OnBehalfOf           string    `json:"on_behalf_of,omitempty"`
	Amount               string    `json:"amount"`
	Currency             string    `json:"currency"`
	SourceChain          string    `json:"source_chain"`
	DestinationChain     string    `json:"destination_chain"`
	SourceDepositAddress string    `json:"source_deposit_address,omitempty"`
	DestinationAddress   string    `json:"destination_address"`
	DestinationTxHash    string    `json:"destination_tx_hash,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// CrossChainTransferList is one page of cross-chain transfers.
type CrossChainTransferList struct {
	Count int                  `json:"count"`
	Data  []CrossChainTransfer `json:"data"`
}

// CreateCrossChainTransferRequest quotes and opens a cross-chain transfer.
type CreateCrossChainTransferRequest struct {
	Amount             string `json:"amount" validate:"required,numeric"`
	Currency           string `json:"currency" validate:"required,oneof=usdc usdt"`
	SourceChain        string `json:"source_chain" validate:"required,oneof=ethereum polygon base arbitrum solana"`
	DestinationChain   string `json:"destination_chain" validate:"required,oneof=ethereum polygon base arbitrum solana,nefield=SourceChain"`
	DestinationAddress string `json:"destination_address" validate:"required"`
	OnBehalfOf         string `json:"on_behalf_of,omitempty" validate:"omitempty,uuid"`
}

// CompleteCrossChainTransferRequest proves the source deposit was funded.
type CompleteCrossChainTransferRequest struct {
	SourceTxHash string `json:"source_tx_hash" validate:"required,hexadecimal"`
}

// CrossChainService manages transfers of value between blockchain networks.
type CrossChainService struct {
	api      *api.Client
	validate *validate.Validator
}

// Create opens a cross-chain transfer. The destination address is checked
// locally against the destination chain's address format.
func (s *CrossChainService) Create(ctx context.Context, req *CreateCrossChainTransferRequest) (*CrossChainTransfer, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	if err := validateDestinationAddress(&VirtualAccountDestination{
		PaymentRail: req.DestinationChain,
		Address:     req.DestinationAddress,
	}); err != nil {
		return nil, err
	}

	var transfer CrossChainTransfer
	if err := s.api.Do(ctx, http.MethodPost, "/crosschain_transfers", req, &transfer); err != nil {
		return nil, err
	}
	return &transfer, nil
}

// Get fetches a cross-chain transfer by id.
func (s *CrossChainService) Get(ctx context.Context, id string) (*CrossChainTransfer, error) {
	var transfer CrossChainTransfer
	if err := s.api.Do(ctx, http.MethodGet, fmt.Sprintf("/crosschain_transfers/%s", id), nil, &transfer); err != nil {
		return nil, err
	}
	return &transfer, nil
}

// List pages through cross-chain transfers.
func (s *CrossChainService) List(ctx context.Context, params *ListParams) (*CrossChainTransferList, error) {
	var list CrossChainTransferList
	if err := s.api.Do(ctx, http.MethodGet, listPath("/crosschain_transfers", params), nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Complete submits the funding proof for an open cross-chain transfer.
func (s *CrossChainService) Complete(ctx context.Context, id string, req *CompleteCrossChainTransferRequest) (*CrossChainTransfer, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	var transfer CrossChainTransfer
	path := fmt.Sprintf("/crosschain_transfers/%s/complete", id)
	if err := s.api.Do(ctx, http.MethodPost, path, req, &transfer); err != nil {
		return nil, err
	}
	return &transfer, nil
}
