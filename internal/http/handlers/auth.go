package handlers

import (
	"net/http"
	"time"

	"fastkart-parcels/internal/auth"
	"fastkart-parcels/internal/logx"
)

// CookieConfig controls the session cookie attributes.
type CookieConfig struct {
	Secure bool
	TTL    time.Duration
}

// AuthHandler serves login, logout and the current user.
type AuthHandler struct {
	logger logx.Logger
	users  userUsecase
	cookie CookieConfig
}

// NewAuthHandler wires the user use cases into HTTP handlers.
func NewAuthHandler(logger logx.Logger, users userUsecase, cookie CookieConfig) *AuthHandler {
	if cookie.TTL <= 0 {
		cookie.TTL = 7 * 24 * time.Hour
	}
	return &AuthHandler{logger: logx.OrNop(logger), users: users, cookie: cookie}
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     auth.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if details := validateRequest(req); details != nil {
		writeValidation(h.logger, w, r, details)
		return
	}

	u, token, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}

	http.SetCookie(w, h.sessionCookie(token, int(h.cookie.TTL.Seconds())))
	writeJSON(h.logger, w, r, http.StatusOK, map[string]userDTO{"user": userToResponse(*u)})
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionCookie("", -1))
	h.logger.Info("user logged out", logx.String("request_id", reqID(r.Context())))
	writeJSON(h.logger, w, r, http.StatusOK, map[string]bool{"success": true})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		writeError(h.logger, w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}
	u, err := h.users.Me(r.Context(), p.UserID)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, map[string]userDTO{"user": userToResponse(*u)})
}
