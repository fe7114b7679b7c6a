package create_appointment

import (
	"context"
	"time"

	"github.com/drphonenord/repairdesk/internal/domain"
)

// StoreRepository mutates the persisted store. The callback runs inside the
// repository's critical section, so check-then-append is atomic.
type StoreRepository interface {
	Update(ctx context.Context, fn func(snap *domain.StoreSnapshot) error) error
}

// Notifier dispatches the new-appointment notification. Calls are
// best-effort; the use case never propagates their errors.
type Notifier interface {
	AppointmentCreated(ctx context.Context, appt *domain.Appointment) error
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
