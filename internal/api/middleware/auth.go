package middleware

import (
	"net/http"

	"github.com/drphonenord/repairdesk/internal/api/handlers"
	"github.com/drphonenord/repairdesk/internal/infra/sessions"
)

// SessionValidator checks whether a token belongs to a live session.
type SessionValidator interface {
	Valid(token string) bool
}

// AuthMiddleware rejects requests without a valid admin session cookie.
func AuthMiddleware(validator SessionValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(sessions.CookieName)
			if err != nil || !validator.Valid(cookie.Value) {
				handlers.RespondUnauthorized(w, "authentication required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
