package solvent

import (
	"context"
	"net/http"
	"time"

	"github.com/solventhq/solvent-go/api"
	"github.com/solventhq/solvent-go/validate"
)

// WalletVerification is the remote verdict on a wallet ownership proof.
type WalletVerification struct {
	Address    string    `json:"address"`
	Chain      string    `json:"chain"`
	Verified   bool      `json:"verified"`
	VerifiedAt time.Time `json:"verified_at,omitempty"`
}

// VerifyWalletRequest submits an address plus a signed challenge proving the
// caller controls its private key. Use chain.Wallet.SignMessage to produce
// the signature over the challenge message.
type VerifyWalletRequest struct {
	Address   string `json:"address" validate:"required,eth_addr"`
	Chain     string `json:"chain" validate:"required,oneof=ethereum polygon base arbitrum"`
	Message   string `json:"message" validate:"required"`
	Signature string `json:"signature" validate:"required,hexadecimal"`
}

// WalletsService proves ownership of self-custodied wallets.
type WalletsService struct {
	api      *api.Client
	validate *validate.Validator
}

// Verify submits a wallet ownership proof.
func (s *WalletsService) Verify(ctx context.Context, req *VerifyWalletRequest) (*WalletVerification, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	var verification WalletVerification
	if err := s.api.Do(ctx, http.MethodPost, "/wallets/verify", req, &verification); err != nil {
		return nil, err
	}
	return &verification, nil
}
