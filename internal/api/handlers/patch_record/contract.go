package patch_record

import (
	"context"

	"github.com/drphonenord/repairdesk/internal/service/records/models"
)

type RecordsService interface {
	Patch(ctx context.Context, id string, req *models.PatchRecordRequest) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
