package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Config holds the construction-time settings for a dispatcher. All fields
// are copied at New time; a Client never mutates after construction.
type Config struct {
	// APIKey authenticates every request. Required.
	APIKey string

	// Environment selects the base URL: "sandbox" (default) or "production".
	Environment string

	// BaseURL overrides environment resolution entirely when set.
	BaseURL string

	// Timeout is the per-request budget. Defaults to DefaultTimeout.
	Timeout time.Duration

	// HTTPClient replaces the default transport. Mostly useful in tests.
	HTTPClient *http.Client

	// Logger receives request traces. Defaults to a nop logger.
	Logger *zap.Logger
}

// Client is the single point of outbound network I/O for all resources.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// New creates a dispatcher from config. The API key is required and the
// environment must be valid when no base URL override is given.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, &InvalidConfigError{Field: "api key", Reason: "is required"}
	}

	baseURL, err := resolveBaseURL(cfg.Environment, cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	// Copy a caller-supplied client so setting the timeout never mutates
	// the caller's value.
	httpClient := &http.Client{}
	if cfg.HTTPClient != nil {
		clone := *cfg.HTTPClient
		httpClient = &clone
	}
	httpClient.Timeout = timeout

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		logger:     logger,
	}, nil
}

// BaseURL returns the resolved base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do performs a JSON request against the API. A nil body sends no payload; a
// non-nil out receives the decoded success response. Non-2xx responses return
// *Error, transport deadline hits return an error wrapping ErrTimeout.
func (c *Client) Do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, method, path, out)
}

// Upload performs a multipart form upload with a single "file" field. The
// content type is left to the multipart writer.
func (c *Client) Upload(ctx context.Context, path, filename string, file io.Reader, out interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.send(req, http.MethodPost, path, out)
}

// send attaches auth headers, executes the request and maps the response into
// the shared error taxonomy.
func (c *Client) send(req *http.Request, method, path string, out interface{}) error {
	req.Header.Set("Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	// Mutating calls carry an idempotency key so network-level retries by
	// intermediaries cannot double-apply them.
	if method == http.MethodPost || method == http.MethodPut {
		req.Header.Set("Idempotency-Key", uuid.NewString())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return fmt.Errorf("%s %s: %w", method, path, ErrTimeout)
		}
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug("api request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newError(resp.StatusCode, respBody)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}

// isTimeout reports whether a transport error was a deadline hit.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
