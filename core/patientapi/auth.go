package patientapi

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// Authenticate acquires one client-credentials token for the run.
// Tokens are not refreshed; a run is expected to finish within their lifetime.
func (c *Client) Authenticate(ctx context.Context) error {
	cc := clientcredentials.Config{
		ClientID:     c.cfg.ClientID,
		ClientSecret: c.cfg.ClientSecret,
		TokenURL:     c.cfg.TokenURL,
		Scopes:       []string{c.cfg.Scope()},
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	tokenHTTP := &http.Client{
		Timeout:   c.lookupTimeout,
		Transport: &cookieTransport{base: c.http.Transport, name: "XSRF-TOKEN", value: c.cfg.XSRFToken},
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, tokenHTTP)

	tok, err := cc.Token(ctx)
	if err != nil {
		return fmt.Errorf("patient api: token request failed: %w", err)
	}
	if tok.AccessToken == "" {
		return fmt.Errorf("patient api: token response has no access token")
	}

	c.token = tok.AccessToken
	return nil
}

// SetToken installs a bearer token obtained elsewhere.
func (c *Client) SetToken(token string) {
	c.token = token
}

// cookieTransport adds a fixed cookie to every request.
type cookieTransport struct {
	base  http.RoundTripper
	name  string
	value string
}

func (t *cookieTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	if t.value == "" {
		return base.RoundTrip(req)
	}

	r := req.Clone(req.Context())
	r.AddCookie(&http.Cookie{Name: t.name, Value: t.value})
	return base.RoundTrip(r)
}
