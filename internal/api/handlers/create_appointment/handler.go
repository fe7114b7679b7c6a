package create_appointment

import (
	"errors"
	"net/http"

	"github.com/drphonenord/repairdesk/internal/api/handlers"
	createAppointment "github.com/drphonenord/repairdesk/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateTime    = "invalid date or time, expected YYYY-MM-DD and HH:MM"
	msgInvalidInput       = "missing or invalid fields"
	msgOutOfHours         = "requested time is outside opening hours"
	msgSlotFull           = "the selected time slot is fully booked"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createAppointment.ErrOutOfHours):
			h.logger.Warn("POST /appointments - Out of hours: date=%s time=%s", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgOutOfHours)

		case errors.Is(err, createAppointment.ErrSlotFull):
			h.logger.Warn("POST /appointments - Slot full: date=%s time=%s", req.Date, req.Time)
			handlers.RespondError(w, http.StatusConflict, msgSlotFull)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: id=%s number=%d", result.ID, result.Number)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
