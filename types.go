package solvent

import (
	"fmt"
	"net/url"
	"strconv"
)

// Address is a postal address attached to customers and bank accounts.
type Address struct {
	StreetLine1 string `json:"street_line_1" validate:"required"`
	StreetLine2 string `json:"street_line_2,omitempty"`
	City        string `json:"city" validate:"required"`
	State       string `json:"state,omitempty"`
	PostalCode  string `json:"postal_code,omitempty"`
	Country     string `json:"country" validate:"required,iso3166_1_alpha3"`
}

// ListParams are the shared pagination controls for list endpoints.
type ListParams struct {
	// Limit caps the page size. Zero means the server default.
	Limit int

	// StartingAfter resumes listing after the given object id.
	StartingAfter string
}

// listPath appends pagination query parameters to an endpoint path.
func listPath(path string, params *ListParams) string {
	if params == nil {
		return path
	}

	query := url.Values{}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.StartingAfter != "" {
		query.Set("starting_after", params.StartingAfter)
	}
	if len(query) == 0 {
		return path
	}
	return fmt.Sprintf("%s?%s", path, query.Encode())
}
