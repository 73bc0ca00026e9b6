package security

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// OIDCClient drives the authorization-code flow against the identity
// provider's hosted endpoints.
type OIDCClient struct {
	domain       string
	clientID     string
	clientSecret string
	redirectURI  string
	client       *http.Client
}

func NewOIDCClient(domain, clientID, clientSecret, redirectURI string, client *http.Client) *OIDCClient {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &OIDCClient{
		domain:       domain,
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURI:  redirectURI,
		client:       client,
	}
}

type TokenSet struct {
	AccessToken  string `json:"access_token"`
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

func (c *OIDCClient) AuthorizeURL(state string) string {
	params := url.Values{}
	params.Set("response_type", "code")
	params.Set("client_id", c.clientID)
	params.Set("redirect_uri", c.redirectURI)
	params.Set("scope", "openid email profile")
	params.Set("state", state)
	return fmt.Sprintf("https://%s/oauth2/authorize?%s", c.domain, params.Encode())
}

func (c *OIDCClient) Exchange(ctx context.Context, code string) (*TokenSet, error) {
	data := url.Values{}
	data.Set("grant_type", "authorization_code")
	data.Set("code", code)
	data.Set("redirect_uri", c.redirectURI)
	data.Set("client_id", c.clientID)
	if c.clientSecret != "" {
		data.Set("client_secret", c.clientSecret)
	}
	return c.tokenRequest(ctx, data)
}

func (c *OIDCClient) Refresh(ctx context.Context, refreshToken string) (*TokenSet, error) {
	data := url.Values{}
	data.Set("grant_type", "refresh_token")
	data.Set("refresh_token", refreshToken)
	data.Set("client_id", c.clientID)
	if c.clientSecret != "" {
		data.Set("client_secret", c.clientSecret)
	}
	return c.tokenRequest(ctx, data)
}

func (c *OIDCClient) tokenRequest(ctx context.Context, data url.Values) (*TokenSet, error) {
	endpoint := fmt.Sprintf("https://%s/oauth2/token", c.domain)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("token request: unexpected status %d", resp.StatusCode)
	}
	var tokens TokenSet
	if err := decodeJSONBody(resp, &tokens); err != nil {
		return nil, fmt.Errorf("token request: %w", err)
	}
	return &tokens, nil
}
