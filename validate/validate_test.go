package validate_test

import (
	"testing"

	"github.com/solventhq/solvent-go/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nestedDetails struct {
	AccountNumber string `json:"account_number" validate:"required,numeric"`
}

type sampleRequest struct {
	Email   string         `json:"email" validate:"required,email"`
	Kind    string         `json:"kind" validate:"required,oneof=standard express"`
	Amount  string         `json:"amount,omitempty" validate:"omitempty,numeric"`
	Details *nestedDetails `json:"details,omitempty"`
}

func TestStructValidPasses(t *testing.T) {
	v := validate.New()

	err := v.Struct(&sampleRequest{
		Email:  "ops@example.com",
		Kind:   "standard",
		Amount: "12.50",
	})
	assert.NoError(t, err)
}

func TestStructReportsOffendingFields(t *testing.T) {
	v := validate.New()

	err := v.Struct(&sampleRequest{
		Email:  "not-an-email",
		Kind:   "premium",
		Amount: "lots",
	})
	require.Error(t, err)

	var fieldErrs *validate.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.True(t, fieldErrs.Has("email"))
	assert.True(t, fieldErrs.Has("kind"))
	assert.True(t, fieldErrs.Has("amount"))
	assert.Equal(t, []string{"must be a valid email address"}, fieldErrs.Fields["email"])
	assert.Equal(t, []string{"must be one of [standard express]"}, fieldErrs.Fields["kind"])
}

func TestStructReportsNestedFieldPaths(t *testing.T) {
	v := validate.New()

	err := v.Struct(&sampleRequest{
		Email:   "ops@example.com",
		Kind:    "express",
		Details: &nestedDetails{AccountNumber: "abc"},
	})
	require.Error(t, err)

	var fieldErrs *validate.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.True(t, fieldErrs.Has("details.account_number"))
}

func TestStructMissingRequired(t *testing.T) {
	v := validate.New()

	err := v.Struct(&sampleRequest{})
	require.Error(t, err)

	var fieldErrs *validate.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, []string{"is required"}, fieldErrs.Fields["email"])
	assert.False(t, fieldErrs.Has("amount"), "omitempty field must not be reported")
}

func TestStructIBANConstraint(t *testing.T) {
	type bankDetails struct {
		IBAN string `json:"iban" validate:"required,iban"`
	}
	v := validate.New()

	cases := []struct {
		name string
		iban string
		ok   bool
	}{
		{"german", "DE89370400440532013000", true},
		{"british", "GB29NWBK60161331926819", true},
		{"norwegian shortest", "NO9386011117947", true},
		{"bad checksum", "DE89370400440532013001", false},
		{"lowercase", "de89370400440532013000", false},
		{"too short", "DE893704", false},
		{"letters in check digits", "DEXX370400440532013000", false},
		{"not an iban", "NOT-AN-IBAN", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(&bankDetails{IBAN: tc.iban})
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			var fieldErrs *validate.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			assert.Equal(t, []string{"must be a valid IBAN"}, fieldErrs.Fields["iban"])
		})
	}
}

func TestFieldErrorsMessage(t *testing.T) {
	fieldErrs := validate.NewFieldErrors()
	fieldErrs.Add("email", "is required")
	fieldErrs.Add("kind", "must be one of [standard express]")

	msg := fieldErrs.Error()
	assert.Contains(t, msg, "validation failed on 2 field(s)")
	assert.Contains(t, msg, "email is required")
}
