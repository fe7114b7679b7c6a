package get_slots

import (
	"context"

	"github.com/drphonenord/repairdesk/internal/domain"
)

// StoreRepository reads the persisted store.
type StoreRepository interface {
	Load(ctx context.Context) (*domain.StoreSnapshot, error)
}

// Logger is the logging interface used by the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
