package transport

import "net/http"

// Authenticator applies credentials to outgoing requests.
type Authenticator interface {
	Apply(req *http.Request)
}

// TokenAuth authenticates with a bearer token, the scheme both the
// directory and billing APIs accept.
type TokenAuth struct {
	Token string
}

// Apply sets the Authorization header on the request.
func (a *TokenAuth) Apply(req *http.Request) {
	if a.Token != "" {
		req.Header.Set("Authorization", "Bearer "+a.Token)
	}
}

// NoAuth performs no authentication. Useful against test servers.
type NoAuth struct{}

// Apply is a no-op.
func (a *NoAuth) Apply(_ *http.Request) {}
