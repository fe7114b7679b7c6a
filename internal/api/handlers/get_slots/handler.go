package get_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/drphonenord/repairdesk/internal/api/handlers"
	"github.com/drphonenord/repairdesk/internal/domain"
	getSlots "github.com/drphonenord/repairdesk/internal/usecase/get_slots"
)

const (
	msgMissingDate = "missing date query parameter, expected YYYY-MM-DD"
	msgInvalidDate = "invalid date format, expected YYYY-MM-DD"
)

type Handler struct {
	useCase GetSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		h.logger.Warn("GET /slots - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid date %q: %v", raw, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getSlots.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots - Invalid input: date=%s", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
		default:
			h.logger.Error("GET /slots - Failed to compute slots: date=%s, error=%v", raw, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
