package create_record

import (
	"errors"
	"net/http"

	"github.com/drphonenord/repairdesk/internal/api/handlers"
	"github.com/drphonenord/repairdesk/internal/service/records"
	"github.com/drphonenord/repairdesk/internal/service/records/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "missing or invalid fields"
)

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

// Handle POST /admin/records
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRecordRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/records - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, records.ErrInvalidInput):
			h.logger.Warn("POST /admin/records - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("POST /admin/records - Failed to create record: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/records - Record created: id=%s number=%d", result.ID, result.Number)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
