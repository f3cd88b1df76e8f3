package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrTimeout marks a request that was aborted because the remote did not
// respond within the configured budget. Callers distinguish it from remote
// rejections with errors.Is.
var ErrTimeout = errors.New("request timed out")

// Error is a non-success response from the remote API. It carries the HTTP
// status code and the raw remote error body alongside the parsed code and
// message when the body is well-formed JSON.
type Error struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	Body       []byte `json:"-"`
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error (status %d)", e.StatusCode)
}

// newError builds an Error from a non-2xx response. The remote error payload
// is parsed best-effort; the raw body is always retained.
func newError(statusCode int, body []byte) *Error {
	apiErr := &Error{
		StatusCode: statusCode,
		Body:       body,
	}
	// Ignore parse failures, not every error body is JSON.
	_ = json.Unmarshal(body, apiErr)
	return apiErr
}

// InvalidConfigError reports a client construction problem.
type InvalidConfigError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s %s", e.Field, e.Reason)
}
