package create_quote

import (
	"context"
	"time"

	"github.com/drphonenord/repairdesk/internal/domain"
)

// StoreRepository mutates the persisted store.
type StoreRepository interface {
	Update(ctx context.Context, fn func(snap *domain.StoreSnapshot) error) error
}

// Notifier dispatches the quote-request notification, best-effort.
type Notifier interface {
	QuoteRequested(ctx context.Context, quote *domain.Quote) error
}

// TimeProvider supplies the current time (swappable in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface used by the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
