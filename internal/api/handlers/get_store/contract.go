package get_store

import (
	"context"

	"github.com/drphonenord/repairdesk/internal/service/records/models"
)

type RecordsService interface {
	Snapshot(ctx context.Context) (*models.StoreResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
