package export_quotes

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/drphonenord/repairdesk/internal/api/handlers"
)

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

// Handle GET /admin/quotes.csv
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	data, filename, err := h.service.QuotesCSV(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/quotes.csv - Export failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
