package admin_login

import "time"

type SessionManager interface {
	Create() (string, error)
	TTL() time.Duration
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
