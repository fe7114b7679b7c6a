package export_quotes

import "context"

type DocumentsService interface {
	QuotesCSV(ctx context.Context) (data []byte, filename string, err error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
