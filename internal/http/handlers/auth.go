package handlers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"talenttrack/internal/app"
	"talenttrack/internal/common"
	"talenttrack/internal/http/middleware"
	"talenttrack/internal/http/response"
)

type CookieConfig struct {
	Domain string
	Secure bool
}

type AuthHandler struct {
	auth    *app.AuthService
	cookies CookieConfig
}

func NewAuthHandler(auth *app.AuthService, cookies CookieConfig) *AuthHandler {
	return &AuthHandler{auth: auth, cookies: cookies}
}

type devLoginRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type authState struct {
	State    string `json:"state"`
	Redirect string `json:"redirect"`
}

// The state cookie is base64url-encoded: raw JSON contains quote characters,
// which are invalid cookie-value bytes and get dropped by http.SetCookie.
func encodeState(s authState) (string, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

func decodeState(value string) (authState, error) {
	var s authState
	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return s, err
	}
	err = json.Unmarshal(raw, &s)
	return s, err
}

func (h *AuthHandler) DevLogin(w http.ResponseWriter, r *http.Request) {
	var req devLoginRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	u, token, err := h.auth.DevLogin(r.Context(), req.Email, req.Name)
	if err != nil {
		response.Error(w, err)
		return
	}
	h.setCookie(w, "access_token", token, 0)
	response.JSON(w, http.StatusOK, u)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	state := authState{
		State:    uuid.NewString(),
		Redirect: r.URL.Query().Get("redirect"),
	}
	if state.Redirect == "" {
		state.Redirect = "/"
	}
	encoded, err := encodeState(state)
	if err != nil {
		response.Error(w, common.NewError(common.CodeInternal, "failed to encode state", err))
		return
	}
	http.SetCookie(w, h.cookie("auth_state", encoded, 300))
	http.Redirect(w, r, h.auth.AuthorizeURL(state.State), http.StatusFound)
}

func (h *AuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	state := r.URL.Query().Get("state")

	var stored authState
	if c, err := r.Cookie("auth_state"); err == nil {
		stored, _ = decodeState(c.Value)
	}
	if stored.State == "" || stored.State != state {
		http.Redirect(w, r, "/login?error=invalid_state", http.StatusFound)
		return
	}

	tokens, _, err := h.auth.HandleCallback(r.Context(), code)
	if err != nil {
		h.clearCookie(w, "auth_state")
		if common.Is(err, common.CodeForbidden) {
			http.Redirect(w, r, "/login?error=domain_restricted", http.StatusFound)
			return
		}
		http.Redirect(w, r, "/login?error=auth_failed", http.StatusFound)
		return
	}

	h.setCookie(w, "access_token", tokens.AccessToken, 0)
	h.setCookie(w, "id_token", tokens.IDToken, 0)
	if tokens.RefreshToken != "" {
		h.setCookie(w, "refresh_token", tokens.RefreshToken, 0)
	}
	h.clearCookie(w, "auth_state")

	redirect := stored.Redirect
	if redirect == "" {
		redirect = "/"
	}
	http.Redirect(w, r, redirect, http.StatusFound)
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie("refresh_token")
	if err != nil || c.Value == "" {
		response.Error(w, common.NewError(common.CodeUnauthorized, "no refresh token", nil))
		return
	}
	tokens, err := h.auth.Refresh(r.Context(), c.Value)
	if err != nil {
		response.Error(w, err)
		return
	}
	h.setCookie(w, "access_token", tokens.AccessToken, 0)
	h.setCookie(w, "id_token", tokens.IDToken, 0)
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearCookie(w, "access_token")
	h.clearCookie(w, "id_token")
	h.clearCookie(w, "refresh_token")
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Error(w, common.NewError(common.CodeUnauthorized, "not authenticated", nil))
		return
	}
	response.JSON(w, http.StatusOK, u)
}

func (h *AuthHandler) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   h.cookies.Domain,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *AuthHandler) setCookie(w http.ResponseWriter, name, value string, maxAge int) {
	http.SetCookie(w, h.cookie(name, value, maxAge))
}

func (h *AuthHandler) clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, h.cookie(name, "", -1))
}
