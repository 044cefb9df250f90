package auth

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// OIDCProvider holds the subset of an OpenID Connect discovery document
// that token verification needs. The calculation log endpoint only
// validates bearer tokens, so authorization and token endpoints are not
// retained.
type OIDCProvider struct {
	Issuer  string `json:"issuer"`
	JWKSURI string `json:"jwks_uri"`
}

const discoveryTimeout = 10 * time.Second

// NewOIDCProvider fetches the discovery document at
// <issuer>/.well-known/openid-configuration. The issuer echoed by the
// document must match the configured one, otherwise tokens could be
// validated against keys from a different realm.
func NewOIDCProvider(issuerURL string) (*OIDCProvider, error) {
	issuerURL = strings.TrimRight(issuerURL, "/")
	discoveryURL := issuerURL + "/.well-known/openid-configuration"

	client := &http.Client{Timeout: discoveryTimeout}
	resp, err := client.Get(discoveryURL)
	if err != nil {
		return nil, fmt.Errorf("fetching OIDC discovery document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("OIDC discovery endpoint returned status %d", resp.StatusCode)
	}

	var provider OIDCProvider
	if err := json.NewDecoder(resp.Body).Decode(&provider); err != nil {
		return nil, fmt.Errorf("decoding OIDC discovery document: %w", err)
	}

	if provider.JWKSURI == "" {
		return nil, fmt.Errorf("OIDC discovery document missing jwks_uri")
	}
	if got := strings.TrimRight(provider.Issuer, "/"); got != issuerURL {
		return nil, fmt.Errorf("OIDC discovery issuer %q does not match configured issuer %q", provider.Issuer, issuerURL)
	}

	return &provider, nil
}
