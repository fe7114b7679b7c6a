package documents

import (
	"context"

	"github.com/drphonenord/repairdesk/internal/domain"
)

// StoreRepository gives read access to the persisted store.
type StoreRepository interface {
	Load(ctx context.Context) (*domain.StoreSnapshot, error)
}

// Logger is the logging interface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
