package admin_logout

import (
	"net/http"

	"github.com/drphonenord/repairdesk/internal/api/handlers"
	"github.com/drphonenord/repairdesk/internal/infra/sessions"
)

// LogoutResponse HTTP response model
type LogoutResponse struct {
	OK bool `json:"ok"`
}

type Handler struct {
	sessions SessionManager
	logger   Logger
}

func NewHandler(sessionManager SessionManager, logger Logger) *Handler {
	return &Handler{
		sessions: sessionManager,
		logger:   logger,
	}
}

// Handle POST /admin/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessions.CookieName); err == nil {
		h.sessions.Destroy(cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessions.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	h.logger.Info("POST /admin/logout - Session closed from %s", r.RemoteAddr)
	handlers.RespondJSON(w, http.StatusOK, &LogoutResponse{OK: true})
}
