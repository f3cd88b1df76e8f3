// Package validate rejects malformed requests locally, before any network
// call, returning a field-level error map instead of a generic error.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps a go-playground validator configured to report fields by
// their json names. It is stateless after construction and safe for
// concurrent use.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator with json tag names registered and the iban
// constraint installed (the engine ships bic but not iban).
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("iban", func(fl validator.FieldLevel) bool {
		return isIBAN(fl.Field().String())
	})

	return &Validator{validate: v}
}

// isIBAN checks an ISO 13616 IBAN: country code, two check digits, uppercase
// alphanumeric BBAN, and the ISO 7064 mod-97 checksum over the rearranged
// string. Lowercase or spaced input is rejected; callers normalize first.
func isIBAN(s string) bool {
	if len(s) < 15 || len(s) > 34 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case i < 2 && (c < 'A' || c > 'Z'):
			return false
		case i >= 2 && i < 4 && (c < '0' || c > '9'):
			return false
		case (c < 'A' || c > 'Z') && (c < '0' || c > '9'):
			return false
		}
	}

	rearranged := s[4:] + s[:4]
	remainder := 0
	for i := 0; i < len(rearranged); i++ {
		c := rearranged[i]
		if c >= 'A' && c <= 'Z' {
			remainder = (remainder*100 + int(c-'A') + 10) % 97
		} else {
			remainder = (remainder*10 + int(c-'0')) % 97
		}
	}
	return remainder == 1
}

// Struct checks a request value against its declared constraints. It is a
// pure check: the value is never modified. A failure returns *FieldErrors
// mapping each offending field path to its violation messages.
func (v *Validator) Struct(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs := NewFieldErrors()
	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		// Non-validation failure (e.g. a non-struct value). Surface as-is
		// under a synthetic field so callers still get one error kind.
		fieldErrs.Add("_", err.Error())
		return fieldErrs
	}

	for _, violation := range violations {
		fieldErrs.Add(fieldPath(violation), message(violation))
	}
	return fieldErrs
}

// fieldPath strips the root struct name from the namespace, leaving the json
// path of the offending field ("iban.account_number").
func fieldPath(fe validator.FieldError) string {
	path := fe.Namespace()
	if i := strings.Index(path, "."); i >= 0 {
		path = path[i+1:]
	}
	return path
}

// message renders a violation as a human-readable sentence fragment.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "required_if":
		return fmt.Sprintf("is required when %s", humanizeParam(fe.Param()))
	case "excluded_unless":
		return fmt.Sprintf("must not be set unless %s", humanizeParam(fe.Param()))
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "uuid":
		return "must be a valid UUID"
	case "numeric":
		return "must be a numeric string"
	case "hexadecimal":
		return "must be a hexadecimal string"
	case "eth_addr":
		return "must be a valid Ethereum address"
	case "iban":
		return "must be a valid IBAN"
	case "bic":
		return "must be a valid BIC"
	case "datetime":
		return fmt.Sprintf("must match the %q date format", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be %s or more", fe.Param())
	case "lt":
		return fmt.Sprintf("must be less than %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be %s or less", fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}

// humanizeParam turns a "Field value" conditional param into "field is value".
func humanizeParam(param string) string {
	parts := strings.SplitN(param, " ", 2)
	if len(parts) != 2 {
		return param
	}
	return fmt.Sprintf("%s is %q", strings.ToLower(parts[0]), parts[1])
}
