package create_record

import (
	"context"

	"github.com/drphonenord/repairdesk/internal/service/records/models"
)

type RecordsService interface {
	Create(ctx context.Context, req *models.CreateRecordRequest) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
