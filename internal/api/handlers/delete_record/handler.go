package delete_record

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/drphonenord/repairdesk/internal/api/handlers"
	"github.com/drphonenord/repairdesk/internal/domain"
	"github.com/drphonenord/repairdesk/internal/service/records"
)

const msgInvalidKind = "invalid kind, expected appointment or quote"

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

// Handle DELETE /admin/records/{id}?kind=appointment|quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	kind := domain.RecordKind(r.URL.Query().Get("kind"))
	if kind == "" {
		kind = domain.KindAppointment
	}

	result, err := h.service.Delete(r.Context(), id, kind)
	if err != nil {
		switch {
		case errors.Is(err, records.ErrInvalidKind):
			h.logger.Warn("DELETE /admin/records/%s - Invalid kind: %q", id, kind)
			handlers.RespondBadRequest(w, msgInvalidKind)
		default:
			h.logger.Error("DELETE /admin/records/%s - Failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/records/%s - Removed %d record(s)", id, result.Deleted)
	handlers.RespondJSON(w, http.StatusOK, result)
}
