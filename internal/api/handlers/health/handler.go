package health

import (
	"net/http"

	"github.com/drphonenord/repairdesk/internal/api/handlers"
)

// HealthResponse HTTP response model
type HealthResponse struct {
	Status string `json:"status"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, &HealthResponse{Status: "ok"})
}
