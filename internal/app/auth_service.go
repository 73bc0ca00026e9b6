package app

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"talenttrack/internal/common"
	"talenttrack/internal/domain/user"
	"talenttrack/internal/security"
)

type AuthService struct {
	users         *UserService
	tokens        *security.TokenProvider
	oidc          *security.OIDCClient
	verifier      *security.Verifier
	debug         bool
	allowedDomain string
	devTokenTTL   time.Duration
}

func NewAuthService(users *UserService, tokens *security.TokenProvider, oidc *security.OIDCClient, verifier *security.Verifier, debug bool, allowedDomain string, devTokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:         users,
		tokens:        tokens,
		oidc:          oidc,
		verifier:      verifier,
		debug:         debug,
		allowedDomain: allowedDomain,
		devTokenTTL:   devTokenTTL,
	}
}

// DevLogin bypasses the identity provider. Outside debug mode the endpoint
// does not exist as far as callers can tell.
func (s *AuthService) DevLogin(ctx context.Context, email, name string) (*user.User, string, error) {
	if !s.debug {
		return nil, "", common.NewError(common.CodeNotFound, "not found", nil)
	}
	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, "", common.NewError(common.CodeValidation, "invalid email", nil)
	}
	u, err := s.users.CreateOrUpdate(ctx, email, name, nil, "")
	if err != nil {
		return nil, "", err
	}
	token, err := s.tokens.Generate(u.Email, u.FullName, s.devTokenTTL)
	if err != nil {
		return nil, "", common.NewError(common.CodeInternal, "failed to issue token", err)
	}
	return u, token, nil
}

func (s *AuthService) AuthorizeURL(state string) string {
	return s.oidc.AuthorizeURL(state)
}

// HandleCallback exchanges the authorization code, verifies the ID token,
// enforces the allowed email domain, and upserts the user.
func (s *AuthService) HandleCallback(ctx context.Context, code string) (*security.TokenSet, *user.User, error) {
	tokens, err := s.oidc.Exchange(ctx, code)
	if err != nil {
		return nil, nil, common.NewError(common.CodeUnauthorized, "authorization code exchange failed", err)
	}
	claims, err := s.verifier.Verify(tokens.IDToken)
	if err != nil {
		return nil, nil, common.NewError(common.CodeUnauthorized, "invalid id token", err)
	}
	if s.allowedDomain != "" && !strings.HasSuffix(strings.ToLower(claims.Email), "@"+strings.ToLower(s.allowedDomain)) {
		return nil, nil, common.NewError(common.CodeForbidden, "email domain not allowed", nil)
	}
	var avatar *string
	if claims.Picture != "" {
		picture := claims.Picture
		avatar = &picture
	}
	u, err := s.users.CreateOrUpdate(ctx, claims.Email, claims.Name, avatar, claims.Subject)
	if err != nil {
		return nil, nil, err
	}
	return tokens, u, nil
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*security.TokenSet, error) {
	tokens, err := s.oidc.Refresh(ctx, refreshToken)
	if err != nil {
		return nil, common.NewError(common.CodeUnauthorized, "refresh failed", err)
	}
	return tokens, nil
}

// Authenticate resolves a session cookie to a user. Dev HS256 tokens are
// tried first, then IdP ID tokens.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*user.User, error) {
	email := ""
	if subject, err := s.tokens.Parse(token); err == nil {
		email = subject
	} else if s.verifier != nil {
		if claims, err := s.verifier.Verify(token); err == nil {
			email = claims.Email
		}
	}
	if email == "" {
		return nil, common.NewError(common.CodeUnauthorized, "invalid authentication credentials", nil)
	}
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, common.NewError(common.CodeUnauthorized, "user not found", err)
		}
		return nil, err
	}
	return u, nil
}
