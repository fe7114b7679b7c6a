package delete_record

import (
	"context"

	"github.com/drphonenord/repairdesk/internal/domain"
	"github.com/drphonenord/repairdesk/internal/service/records/models"
)

type RecordsService interface {
	Delete(ctx context.Context, id string, kind domain.RecordKind) (*models.DeleteResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
