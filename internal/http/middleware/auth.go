package middleware

import (
	"io"
	"net/http"

	"fastkart-parcels/internal/auth"
	"fastkart-parcels/internal/logx"
)

type tokenVerifier interface {
	Verify(token string) (auth.Claims, error)
}

// Authenticate admits requests carrying a valid session cookie and stores the
// caller in the request context. Everything else gets 401.
func Authenticate(v tokenVerifier, logger logx.Logger) func(http.Handler) http.Handler {
	logger = logx.OrNop(logger)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(auth.CookieName)
			if err != nil || c.Value == "" {
				logger.Warn("unauthorized request, no token",
					logx.String("method", r.Method), logx.String("path", r.URL.Path))
				unauthorized(w)
				return
			}
			claims, err := v.Verify(c.Value)
			if err != nil {
				logger.Warn("unauthorized request, invalid token",
					logx.String("method", r.Method), logx.String("path", r.URL.Path))
				unauthorized(w)
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), claims)))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = io.WriteString(w, `{"error":"Unauthorized"}`)
}
