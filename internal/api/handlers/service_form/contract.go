package service_form

import "context"

type DocumentsService interface {
	ServiceFormPDF(ctx context.Context, id string) (data []byte, filename string, err error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
