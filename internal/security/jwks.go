package security

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	jose "github.com/go-jose/go-jose/v3"
	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates RS256 ID tokens against the identity provider's JWKS.
// The key set is an explicitly owned, lazily-populated cache: fetched on
// first use and refreshed after the configured interval.
type Verifier struct {
	jwksURL  string
	issuer   string
	audience string
	refresh  time.Duration
	client   *http.Client

	mu        sync.Mutex
	keys      *jose.JSONWebKeySet
	fetchedAt time.Time
}

func NewVerifier(jwksURL, issuer, audience string, refresh time.Duration, client *http.Client) *Verifier {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	return &Verifier{jwksURL: jwksURL, issuer: issuer, audience: audience, refresh: refresh, client: client}
}

// IdentityClaims are the profile claims extracted from a verified ID token.
type IdentityClaims struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

type idTokenClaims struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
	jwt.RegisteredClaims
}

func (v *Verifier) Verify(raw string) (*IdentityClaims, error) {
	var claims idTokenClaims
	token, err := jwt.ParseWithClaims(raw, &claims, v.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(v.issuer),
		jwt.WithAudience(v.audience),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid id token")
	}
	return &IdentityClaims{
		Subject: claims.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
		Picture: claims.Picture,
	}, nil
}

func (v *Verifier) keyFunc(token *jwt.Token) (any, error) {
	kid, _ := token.Header["kid"].(string)
	if kid == "" {
		return nil, errors.New("id token missing kid header")
	}
	keys, err := v.keySet()
	if err != nil {
		return nil, err
	}
	matches := keys.Key(kid)
	if len(matches) == 0 {
		return nil, fmt.Errorf("public key %q not found in JWKS", kid)
	}
	return matches[0].Key, nil
}

func (v *Verifier) keySet() (*jose.JSONWebKeySet, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.keys != nil && (v.refresh <= 0 || time.Since(v.fetchedAt) < v.refresh) {
		return v.keys, nil
	}
	resp, err := v.client.Get(v.jwksURL)
	if err != nil {
		// Serve the stale set rather than failing logins on a fetch hiccup.
		if v.keys != nil {
			return v.keys, nil
		}
		return nil, fmt.Errorf("fetch JWKS: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		if v.keys != nil {
			return v.keys, nil
		}
		return nil, fmt.Errorf("fetch JWKS: unexpected status %d", resp.StatusCode)
	}
	var set jose.JSONWebKeySet
	if err := json.NewDecoder(resp.Body).Decode(&set); err != nil {
		return nil, fmt.Errorf("decode JWKS: %w", err)
	}
	v.keys = &set
	v.fetchedAt = time.Now()
	return v.keys, nil
}
