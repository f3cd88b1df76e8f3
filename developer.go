package solvent

import (
	"context"
	"net/http"
	"time"

	"github.com/solventhq/solvent-go/api"
	"github.com/solventhq/solvent-go/validate"
)

// DeveloperFee is the platform-wide fee the developer takes on transfers.
type DeveloperFee struct {
	DefaultFeePercent string    `json:"default_fee_percent"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// UpdateDeveloperFeeRequest changes the default developer fee.
type UpdateDeveloperFeeRequest struct {
	DefaultFeePercent string `json:"default_fee_percent" validate:"required,numeric"`
}

// DeveloperService reads and updates developer-level settings.
type DeveloperService struct {
	api      *api.Client
	validate *validate.Validator
}

// Fees fetches the current developer fee configuration.
func (s *DeveloperService) Fees(ctx context.Context) (*DeveloperFee, error) {
	var fee DeveloperFee
	if err := s.api.Do(ctx, http.MethodGet, "/developer/fees", nil, &fee); err != nil {
		return nil, err
	}
	return &fee, nil
}

// UpdateFees changes the default developer fee.
func (s *DeveloperService) UpdateFees(ctx context.Context, req *UpdateDeveloperFeeRequest) (*DeveloperFee, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	var fee DeveloperFee
	if err := s.api.Do(ctx, http.MethodPut, "/developer/fees", req, &fee); err != nil {
		return nil, err
	}
	return &fee, nil
}
