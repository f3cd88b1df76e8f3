package solvent

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/solventhq/solvent-go/api"
	"github.com/solventhq/solvent-go/validate"
)

// Customer is an end user of the platform going through (or past) KYC.
type Customer struct {
	ID               string    `json:"id"`
	Type             string    `json:"type"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	BusinessName     string    `json:"business_name,omitempty"`
	Email            string    `json:"email"`
	Address          *Address  `json:"address,omitempty"`
	BirthDate        string    `json:"birth_date,omitempty"`
	Status           string    `json:"status"`
	KYCStatus        string    `json:"kyc_status"`
	KYCLink          string    `json:"kyc_link,omitempty"`
	RejectionReasons []string  `json:"rejection_reasons,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CustomerList is one page of customers.
type CustomerList struct {
	Count int        `json:"count"`
	Data  []Customer `json:"data"`
}

// CreateCustomerRequest creates a customer and kicks off KYC.
type CreateCustomerRequest struct {
	Type                    string   `json:"type" validate:"required,oneof=individual business"`
	FirstName               string   `json:"first_name" validate:"required"`
	LastName                string   `json:"last_name" validate:"required"`
	BusinessName            string   `json:"business_name,omitempty" validate:"required_if=Type business"`
	Email                   string   `json:"email" validate:"required,email"`
	Address                 *Address `json:"address" validate:"required"`
	BirthDate               string   `json:"birth_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	TaxIdentificationNumber string   `json:"tax_identification_number,omitempty"`
	SignedAgreementID       string   `json:"signed_agreement_id" validate:"required,uuid"`
}

// UpdateCustomerRequest modifies an existing customer. Zero fields are left
// untouched by the server.
type UpdateCustomerRequest struct {
	FirstName string   `json:"first_name,omitempty"`
	LastName  string   `json:"last_name,omitempty"`
	Email     string   `json:"email,omitempty" validate:"omitempty,email"`
	Address   *Address `json:"address,omitempty"`
	BirthDate string   `json:"birth_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// CustomersService manages customers and their KYC lifecycle.
type CustomersService struct {
	api      *api.Client
	validate *validate.Validator
}

// Create registers a new customer.
func (s *CustomersService) Create(ctx context.Context, req *CreateCustomerRequest) (*Customer, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	var customer Customer
	if err := s.api.Do(ctx, http.MethodPost, "/customers", req, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// Get fetches a customer by id.
func (s *CustomersService) Get(ctx context.Context, id string) (*Customer, error) {
	var customer Customer
	if err := s.api.Do(ctx, http.MethodGet, fmt.Sprintf("/customers/%s", id), nil, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// List pages through customers.
func (s *CustomersService) List(ctx context.Context, params *ListParams) (*CustomerList, error) {
	var list CustomerList
	if err := s.api.Do(ctx, http.MethodGet, listPath("/customers", params), nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Update modifies a customer.
func (s *CustomersService) Update(ctx context.Context, id string, req *UpdateCustomerRequest) (*Customer, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	var customer Customer
	if err := s.api.Do(ctx, http.MethodPut, fmt.Sprintf("/customers/%s", id), req, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// Delete removes a customer.
func (s *CustomersService) Delete(ctx context.Context, id string) error {
	return s.api.Do(ctx, http.MethodDelete, fmt.Sprintf("/customers/%s", id), nil, nil)
}
