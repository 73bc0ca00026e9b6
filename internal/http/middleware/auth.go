package middleware

import (
	"context"
	"net/http"

	"talenttrack/internal/app"
	"talenttrack/internal/common"
	"talenttrack/internal/domain/user"
	"talenttrack/internal/http/response"
)

type userKey struct{}

type AuthMiddleware struct {
	auth *app.AuthService
}

func NewAuthMiddleware(auth *app.AuthService) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// Authenticate reads the session cookie (access_token, falling back to
// id_token) and resolves the current user.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := cookieValue(r, "access_token")
		if token == "" {
			token = cookieValue(r, "id_token")
		}
		if token == "" {
			response.Error(w, common.NewError(common.CodeUnauthorized, "not authenticated", nil))
			return
		}
		u, err := m.auth.Authenticate(r.Context(), token)
		if err != nil {
			response.Error(w, err)
			return
		}
		ctx := context.WithValue(r.Context(), userKey{}, u)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func UserFromContext(ctx context.Context) (*user.User, bool) {
	u, ok := ctx.Value(userKey{}).(*user.User)
	return u, ok
}

func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}
