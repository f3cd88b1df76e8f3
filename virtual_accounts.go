package solvent

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/solventhq/solvent-go/api"
	"github.com/solventhq/solvent-go/chain"
	"github.com/solventhq/solvent-go/validate"
)

// VirtualAccountSource declares the fiat side of a virtual account.
type VirtualAccountSource struct {
	Currency string `json:"currency" validate:"required,oneof=usd eur"`
}

// VirtualAccountDestination declares where incoming fiat is converted to.
type VirtualAccountDestination struct {
	PaymentRail string `json:"payment_rail" validate:"required,oneof=ethereum polygon base arbitrum solana"`
	Currency    string `json:"currency" validate:"required,oneof=usdc usdt dai"`
	Address     string `json:"address" validate:"required"`
}

// DepositInstructions are the bank coordinates senders pay fiat into.
type DepositInstructions struct {
	Currency      string `json:"currency"`
	BankName      string `json:"bank_name"`
	BankAddress   string `json:"bank_address,omitempty"`
	RoutingNumber string `json:"bank_routing_number,omitempty"`
	AccountNumber string `json:"bank_account_number,omitempty"`
	IBAN          string `json:"iban,omitempty"`
	BIC           string `json:"bic,omitempty"`
	AccountHolder string `json:"account_holder_name,omitempty"`
}

// VirtualAccount is a bank-account-like deposit target that auto-converts
// incoming fiat to a crypto asset at the destination address.
type VirtualAccount struct {
	ID                        string                     `json:"id"`
	CustomerID                string                     `json:"customer_id"`
	Status                    string                     `json:"status"`
	SourceDepositInstructions *DepositInstructions       `json:"source_deposit_instructions,omitempty"`
	Destination               *VirtualAccountDestination `json:"destination,omitempty"`
	DeveloperFeePercent       string                     `json:"developer_fee_percent,omitempty"`
	CreatedAt                 time.Time                  `json:"created_at"`
	UpdatedAt                 time.Time                  `json:"updated_at"`
}

// VirtualAccountList is one page of virtual accounts.
type VirtualAccountList struct {
	Count int              `json:"count"`
	Data  []VirtualAccount `json:"data"`
}

// VirtualAccountActivity is one deposit event on a virtual account.
type VirtualAccountActivity struct {
	ID                       string    `json:"id"`
	Type                     string    `json:"type"`
	Amount                   string    `json:"amount"`
	Currency                 string    `json:"currency"`
	DeveloperFeeAmount       string    `json:"developer_fee_amount,omitempty"`
	ExchangeFeeAmount        string    `json:"exchange_fee_amount,omitempty"`
	DestinationTxHash        string    `json:"destination_tx_hash,omitempty"`
	GatewayFeeAmount         string    `json:"gateway_fee_amount,omitempty"`
	SourcePaymentRail        string    `json:"source_payment_rail,omitempty"`
	SourceSenderName         string    `json:"source_sender_name,omitempty"`
	SourceSenderBankRoutingN string    `json:"source_sender_bank_routing_number,omitempty"`
	CreatedAt                time.Time `json:"created_at"`
}

// VirtualAccountActivityList is one page of deposit events.
type VirtualAccountActivityList struct {
	Count int                      `json:"count"`
	Data  []VirtualAccountActivity `json:"data"`
}

// CreateVirtualAccountRequest provisions a virtual account for a customer.
type CreateVirtualAccountRequest struct {
	Source              *VirtualAccountSource      `json:"source" validate:"required"`
	Destination         *VirtualAccountDestination `json:"destination" validate:"required"`
	DeveloperFeePercent string                     `json:"developer_fee_percent,omitempty" validate:"omitempty,numeric"`
}

// UpdateVirtualAccountRequest changes the conversion destination of an
// existing virtual account.
type UpdateVirtualAccountRequest struct {
	Destination         *VirtualAccountDestination `json:"destination,omitempty"`
	DeveloperFeePercent string                     `json:"developer_fee_percent,omitempty" validate:"omitempty,numeric"`
}

// VirtualAccountsService manages fiat deposit accounts that convert to crypto.
type VirtualAccountsService struct {
	api      *api.Client
	validate *validate.Validator
}

// Create provisions a virtual account. The destination address is checked
// locally against the destination payment rail's address format before any
// network call.
func (s *VirtualAccountsService) Create(ctx context.Context, customerID string, req *CreateVirtualAccountRequest) (*VirtualAccount, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	if err := validateDestinationAddress(req.Destination); err != nil {
		return nil, err
	}

	var account VirtualAccount
	path := fmt.Sprintf("/customers/%s/virtual_accounts", customerID)
	if err := s.api.Do(ctx, http.MethodPost, path, req, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// Get fetches one virtual account.
func (s *VirtualAccountsService) Get(ctx context.Context, customerID, id string) (*VirtualAccount, error) {
	var account VirtualAccount
	path := fmt.Sprintf("/customers/%s/virtual_accounts/%s", customerID, id)
	if err := s.api.Do(ctx, http.MethodGet, path, nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// List pages through a customer's virtual accounts.
func (s *VirtualAccountsService) List(ctx context.Context, customerID string, params *ListParams) (*VirtualAccountList, error) {
	var list VirtualAccountList
	path := listPath(fmt.Sprintf("/customers/%s/virtual_accounts", customerID), params)
	if err := s.api.Do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Update changes a virtual account's destination.
func (s *VirtualAccountsService) Update(ctx context.Context, customerID, id string, req *UpdateVirtualAccountRequest) (*VirtualAccount, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	if req.Destination != nil {
		if err := validateDestinationAddress(req.Destination); err != nil {
			return nil, err
		}
	}

	var account VirtualAccount
	path := fmt.Sprintf("/customers/%s/virtual_accounts/%s", customerID, id)
	if err := s.api.Do(ctx, http.MethodPut, path, req, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// ListActivity pages through deposit events on a virtual account.
func (s *VirtualAccountsService) ListActivity(ctx context.Context, customerID, id string, params *ListParams) (*VirtualAccountActivityList, error) {
	var list VirtualAccountActivityList
	path := listPath(fmt.Sprintf("/customers/%s/virtual_accounts/%s/history", customerID, id), params)
	if err := s.api.Do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// validateDestinationAddress rejects destination addresses that do not match
// the payout rail's address format, reported as a field violation.
func validateDestinationAddress(dest *VirtualAccountDestination) error {
	if dest == nil || dest.Address == "" {
		return nil
	}
	if err := chain.ValidateAddress(dest.PaymentRail, dest.Address); err != nil {
		fieldErrs := validate.NewFieldErrors()
		fieldErrs.Add("destination.address", fmt.Sprintf("is not a valid %s address", dest.PaymentRail))
		return fieldErrs
	}
	return nil
}
