package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/solventhq/solvent-go/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := api.New(api.Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api key")
}

func TestNewEnvironmentResolution(t *testing.T) {
	cases := []struct {
		name        string
		environment string
		baseURL     string
		want        string
		wantErr     bool
	}{
		{name: "default is sandbox", want: api.SandboxBaseURL},
		{name: "explicit sandbox", environment: api.EnvironmentSandbox, want: api.SandboxBaseURL},
		{name: "production", environment: api.EnvironmentProduction, want: api.ProductionBaseURL},
		{name: "override wins", environment: api.EnvironmentProduction, baseURL: "http://localhost:9999", want: "http://localhost:9999"},
		{name: "unknown environment", environment: "staging", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client, err := api.New(api.Config{
				APIKey:      "sk-test",
				Environment: tc.environment,
				BaseURL:     tc.baseURL,
			})
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, client.BaseURL())
		})
	}
}

func TestNewDoesNotMutateCallerHTTPClient(t *testing.T) {
	custom := &http.Client{}
	_, err := api.New(api.Config{
		APIKey:     "sk-test",
		HTTPClient: custom,
		Timeout:    5 * time.Second,
	})
	require.NoError(t, err)
	assert.Zero(t, custom.Timeout, "caller's client must stay untouched")
}

func TestDoAttachesHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "sk-test", r.Header.Get("Api-Key"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("Idempotency-Key"))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"name":"test"}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"obj_1"}`))
	}))
	defer server.Close()

	client, err := api.New(api.Config{APIKey: "sk-test", BaseURL: server.URL})
	require.NoError(t, err)

	var out struct {
		ID string `json:"id"`
	}
	err = client.Do(context.Background(), http.MethodPost, "/things", map[string]string{"name": "test"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "obj_1", out.ID)
}

func TestDoGetOmitsIdempotencyKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Idempotency-Key"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, err := api.New(api.Config{APIKey: "sk-test", BaseURL: server.URL})
	require.NoError(t, err)
	require.NoError(t, client.Do(context.Background(), http.MethodGet, "/things", nil, nil))
}

func TestDoAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"code":"invalid_parameters","message":"amount too small"}`))
	}))
	defer server.Close()

	client, err := api.New(api.Config{APIKey: "sk-test", BaseURL: server.URL})
	require.NoError(t, err)

	err = client.Do(context.Background(), http.MethodPost, "/transfers", map[string]string{}, nil)
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "invalid_parameters", apiErr.Code)
	assert.Equal(t, "amount too small", apiErr.Message)
	assert.Contains(t, string(apiErr.Body), "amount too small")
}

func TestDoAPIErrorNonJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable"))
	}))
	defer server.Close()

	client, err := api.New(api.Config{APIKey: "sk-test", BaseURL: server.URL})
	require.NoError(t, err)

	err = client.Do(context.Background(), http.MethodGet, "/customers", nil, nil)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, []byte("upstream unavailable"), apiErr.Body)
}

func TestDoTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	client, err := api.New(api.Config{
		APIKey:  "sk-test",
		BaseURL: server.URL,
		Timeout: 50 * time.Millisecond,
	})
	require.NoError(t, err)

	err = client.Do(context.Background(), http.MethodGet, "/customers", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrTimeout)

	var apiErr *api.Error
	assert.False(t, errors.As(err, &apiErr), "timeout must not be an API error")
}

func TestUpload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "sk-test", r.Header.Get("Api-Key"))
		mediaType := r.Header.Get("Content-Type")
		assert.True(t, strings.HasPrefix(mediaType, "multipart/form-data"), "content type %q", mediaType)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "passport.pdf", header.Filename)
		content, _ := io.ReadAll(file)
		assert.Equal(t, "fake pdf bytes", string(content))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "file_1"})
	}))
	defer server.Close()

	client, err := api.New(api.Config{APIKey: "sk-test", BaseURL: server.URL})
	require.NoError(t, err)

	var out struct {
		ID string `json:"id"`
	}
	err = client.Upload(context.Background(), "/files", "passport.pdf", strings.NewReader("fake pdf bytes"), &out)
	require.NoError(t, err)
	assert.Equal(t, "file_1", out.ID)
}
