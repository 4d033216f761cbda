package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/costsync/costsync/pkg/errors"
)

func TestClientAppliesAuthAndHeaders(t *testing.T) {
	var got *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(r.Context())
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := New("github", server.URL, &TokenAuth{Token: "secret-token"})
	var out map[string]any
	require.NoError(t, c.Get(context.Background(), "/orgs/acme/members", &out))

	require.NotNil(t, got)
	assert.Equal(t, "Bearer secret-token", got.Header.Get("Authorization"))
	assert.Equal(t, "application/vnd.github+json", got.Header.Get("Accept"))
	assert.Equal(t, "costsync", got.Header.Get("User-Agent"))
	assert.Equal(t, "/orgs/acme/members", got.URL.Path)
}

func TestClientNoAuthLeavesHeaderUnset(t *testing.T) {
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := New("github", server.URL, nil)
	require.NoError(t, c.Get(context.Background(), "/", nil))
	assert.Empty(t, auth)
}

func TestClientPostSendsJSONBody(t *testing.T) {
	var contentType string
	var method string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		contentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	c := New("billing", server.URL, &NoAuth{})
	err := c.Post(context.Background(), "/resource", map[string][]string{"users": {"octocat"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "application/json", contentType)
}

func TestClientErrorUsesAPIMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "Not Found", "documentation_url": "https://docs.example"}`))
	}))
	defer server.Close()

	c := New("github", server.URL, &NoAuth{})
	err := c.Get(context.Background(), "/orgs/ghost/members", nil)
	require.Error(t, err)

	var apiErr *errors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)
	assert.Equal(t, "Not Found", apiErr.Message)
	assert.Equal(t, "github", apiErr.Service)
	assert.True(t, errors.IsNotFound(err))
}

func TestClientErrorWithoutJSONBodyFallsBackToStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	c := New("billing", server.URL, &NoAuth{})
	err := c.Get(context.Background(), "/", nil)
	require.Error(t, err)

	var apiErr *errors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 502, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "502")
	assert.True(t, errors.IsServiceUnavailable(err))
}

func TestClientAuthFailureMapsToSentinel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "Bad credentials"}`))
	}))
	defer server.Close()

	c := New("github", server.URL, &TokenAuth{Token: "expired"})
	err := c.Get(context.Background(), "/orgs/acme/members", nil)
	require.Error(t, err)
	assert.True(t, errors.IsAuthFailed(err))
	assert.Contains(t, err.Error(), "Bad credentials")
}
