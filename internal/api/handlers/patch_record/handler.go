package patch_record

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/drphonenord/repairdesk/internal/api/handlers"
	"github.com/drphonenord/repairdesk/internal/service/records"
	"github.com/drphonenord/repairdesk/internal/service/records/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "missing or invalid fields"
	msgRecordNotFound     = "record not found"
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

// Handle PATCH /admin/records/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.PatchRecordRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/records/%s - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Patch(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, records.ErrRecordNotFound):
			h.logger.Warn("PATCH /admin/records/%s - Record not found", id)
			handlers.RespondNotFound(w, msgRecordNotFound)
		case errors.Is(err, records.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/records/%s - Invalid input: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("PATCH /admin/records/%s - Failed to patch record: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/records/%s - Record patched", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
