package records

import (
	"context"
	"time"

	"github.com/drphonenord/repairdesk/internal/domain"
)

// StoreRepository is the persisted store the editor works on.
type StoreRepository interface {
	Load(ctx context.Context) (*domain.StoreSnapshot, error)
	Update(ctx context.Context, fn func(snap *domain.StoreSnapshot) error) error
}

// TimeProvider supplies the current time (swappable in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface used by the service.
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
