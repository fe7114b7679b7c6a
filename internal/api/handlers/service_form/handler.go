package service_form

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/drphonenord/repairdesk/internal/api/handlers"
	"github.com/drphonenord/repairdesk/internal/service/documents"
)

const msgRecordNotFound = "record not found"

type Handler struct {
	service DocumentsService
	logger  Logger
}

func NewHandler(service DocumentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /admin/records/{id}/service-form.pdf
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	data, filename, err := h.service.ServiceFormPDF(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, documents.ErrRecordNotFound):
			h.logger.Warn("GET /admin/records/%s/service-form.pdf - Record not found", id)
			handlers.RespondNotFound(w, msgRecordNotFound)
		default:
			h.logger.Error("GET /admin/records/%s/service-form.pdf - Rendering failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
