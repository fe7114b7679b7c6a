package mark_viewed

import (
	"context"

	"github.com/drphonenord/repairdesk/internal/domain"
)

type RecordsService interface {
	MarkViewed(ctx context.Context, id string, kind domain.RecordKind) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
