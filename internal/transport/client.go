// Package transport provides the authenticated HTTP/JSON client shared by
// the directory and billing API clients.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/costsync/costsync/pkg/errors"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
var DefaultHTTPTimeout = 30 * time.Second

// userAgent identifies this client to the remote APIs.
const userAgent = "costsync"

// Client provides JSON request/response handling with authentication over
// a fixed base URL.
type Client struct {
	service string
	baseURL string
	http    *http.Client
	auth    Authenticator
}

// New creates a transport client for the named service rooted at baseURL.
// The service name is used in error messages so failures identify which of
// the two APIs rejected the call.
func New(service, baseURL string, auth Authenticator) *Client {
	if auth == nil {
		auth = &NoAuth{}
	}
	return &Client{
		service: service,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultHTTPTimeout},
		auth:    auth,
	}
}

// Get performs a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Delete performs a DELETE request. The billing API requires a JSON body on
// resource deletion, so one is supported here.
func (c *Client) Delete(ctx context.Context, path string, body any) error {
	return c.do(ctx, http.MethodDelete, path, body, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.NewConfigError(c.service, "failed to encode request body", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.NewConfigError(c.service, "failed to build request for "+path, err)
	}

	c.auth.Apply(req)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &errors.APIError{
			Service:  c.service,
			Endpoint: method + " " + path,
			Message:  err.Error(),
			Err:      err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFrom(resp, method, path)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &errors.APIError{
			Service:  c.service,
			Endpoint: method + " " + path,
			Message:  "failed to decode response: " + err.Error(),
			Err:      err,
		}
	}
	return nil
}

// errorFrom converts a non-2xx response into an APIError, preferring the
// API's own error message when the body carries one.
func (c *Client) errorFrom(resp *http.Response, method, path string) error {
	message := resp.Status

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil && len(raw) > 0 {
		var apiMsg struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &apiMsg) == nil && apiMsg.Message != "" {
			message = apiMsg.Message
		}
	}

	return errors.NewAPIError(c.service, resp.StatusCode, method+" "+path, message)
}
