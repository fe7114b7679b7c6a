package mark_viewed

import (
	"errors"
	"net/http"

	"github.com/drphonenord/repairdesk/internal/api/handlers"
	"github.com/drphonenord/repairdesk/internal/domain"
	"github.com/drphonenord/repairdesk/internal/service/records"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidKind        = "invalid kind, expected appointment or quote"
	msgRecordNotFound     = "record not found"
)

// MarkViewedRequest HTTP request model
type MarkViewedRequest struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`
}

// MarkViewedResponse HTTP response model
type MarkViewedResponse struct {
	OK bool `json:"ok"`
}

type Handler struct {
	service RecordsService
	logger  Logger
}

func NewHandler(service RecordsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /admin/mark-viewed
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req MarkViewedRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/mark-viewed - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.MarkViewed(r.Context(), req.ID, domain.RecordKind(req.Kind))
	if err != nil {
		switch {
		case errors.Is(err, records.ErrInvalidKind):
			h.logger.Warn("POST /admin/mark-viewed - Invalid kind: %q", req.Kind)
			handlers.RespondBadRequest(w, msgInvalidKind)
		case errors.Is(err, records.ErrRecordNotFound):
			h.logger.Warn("POST /admin/mark-viewed - Record not found: id=%s kind=%s", req.ID, req.Kind)
			handlers.RespondNotFound(w, msgRecordNotFound)
		default:
			h.logger.Error("POST /admin/mark-viewed - Failed: id=%s error=%v", req.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/mark-viewed - Marked viewed: id=%s kind=%s", req.ID, req.Kind)
	handlers.RespondJSON(w, http.StatusOK, &MarkViewedResponse{OK: true})
}
