package create_quote

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/drphonenord/repairdesk/internal/domain"
)

// UseCase stores incoming quote requests.
type UseCase struct {
	store        StoreRepository
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case.
func NewUseCase(store StoreRepository, notifier Notifier, logger Logger) *UseCase {
	return &UseCase{
		store:        store,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute validates and stores one quote request.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateQuote: name=%s %s, model=%s", req.FirstName, req.LastName, req.Model)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateQuote: validation failed: %v", err)
		return nil, err
	}

	// 2. Append and persist
	quote := domain.Quote{
		ID:        uuid.NewString(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		City:      req.City,
		Model:     req.Model,
		Issue:     req.Issue,
		CreatedAt: uc.timeProvider.Now(),
	}

	err := uc.store.Update(ctx, func(snap *domain.StoreSnapshot) error {
		snap.Quotes = append(snap.Quotes, quote)
		return nil
	})
	if err != nil {
		uc.logger.Error("CreateQuote: failed to persist quote: %v", err)
		return nil, fmt.Errorf("%w: failed to persist quote: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateQuote: created id=%s", quote.ID)

	// 3. Best-effort notification
	go func(quote domain.Quote) {
		if err := uc.notifier.QuoteRequested(context.Background(), &quote); err != nil {
			uc.logger.Warn("CreateQuote: notification failed for id=%s: %v", quote.ID, err)
		}
	}(quote)

	return &Response{ID: quote.ID}, nil
}

// validateRequest checks the required fields. City and email are optional.
func validateRequest(req *Request) error {
	required := []struct {
		name  string
		value string
	}{
		{"first", req.FirstName},
		{"last", req.LastName},
		{"tel", req.Phone},
		{"model", req.Model},
		{"issue", req.Issue},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidInput, f.name)
		}
	}
	return nil
}
