package admin_login

import (
	"crypto/subtle"
	"net/http"

	"github.com/drphonenord/repairdesk/internal/api/handlers"
	"github.com/drphonenord/repairdesk/internal/infra/sessions"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgWrongPassword      = "wrong password"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	OK bool `json:"ok"`
}

type Handler struct {
	password string
	sessions SessionManager
	logger   Logger
}

func NewHandler(password string, sessionManager SessionManager, logger Logger) *Handler {
	return &Handler{
		password: password,
		sessions: sessionManager,
		logger:   logger,
	}
}

// Handle POST /admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.password)) != 1 {
		h.logger.Warn("POST /admin/login - Wrong password from %s", r.RemoteAddr)
		handlers.RespondUnauthorized(w, msgWrongPassword)
		return
	}

	token, err := h.sessions.Create()
	if err != nil {
		h.logger.Error("POST /admin/login - Failed to create session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessions.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessions.TTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	h.logger.Info("POST /admin/login - Session opened from %s", r.RemoteAddr)
	handlers.RespondJSON(w, http.StatusOK, &LoginResponse{OK: true})
}
