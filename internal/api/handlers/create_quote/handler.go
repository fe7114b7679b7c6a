package create_quote

import (
	"errors"
	"net/http"

	"github.com/drphonenord/repairdesk/internal/api/handlers"
	createQuote "github.com/drphonenord/repairdesk/internal/usecase/create_quote"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "missing or invalid fields"
)

type Handler struct {
	useCase CreateQuoteUseCase
	logger  Logger
}

func NewHandler(useCase CreateQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateQuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createQuote.ErrInvalidInput):
			h.logger.Warn("POST /quotes - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("POST /quotes - Failed to create quote: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /quotes - Quote created: id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, &QuoteCreatedResponse{ID: result.ID})
}
