package connector

import (
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
)

// Authenticator applies credentials to an outgoing request
type Authenticator interface {
	Authenticate(req *http.Request) error
}

// NoAuth sends requests without credentials
type NoAuth struct{}

func (NoAuth) Authenticate(*http.Request) error {
	return nil
}

// BasicAuth authenticates with user name and password
type BasicAuth struct {
	Username string
	Password string
}

func (a BasicAuth) Authenticate(req *http.Request) error {
	req.SetBasicAuth(a.Username, a.Password)
	return nil
}

// TokenAuth authenticates with a bearer token from a token source
type TokenAuth struct {
	source oauth2.TokenSource
}

// NewTokenAuth caches tokens from source until they expire
func NewTokenAuth(source oauth2.TokenSource) *TokenAuth {
	return &TokenAuth{source: oauth2.ReuseTokenSource(nil, source)}
}

// NewStaticTokenAuth authenticates every request with the same token
func NewStaticTokenAuth(token string) *TokenAuth {
	return NewTokenAuth(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}))
}

func (a *TokenAuth) Authenticate(req *http.Request) error {
	token, err := a.source.Token()
	if err != nil {
		return fmt.Errorf("failed to get token: %w", err)
	}
	token.SetAuthHeader(req)
	return nil
}
