package mailer

import "context"

// Message is an email to be sent.
type Message struct {
	To      string
	ToName  string
	Subject string
	Body    string
}

// Sender delivers email. Implementations can be swapped without
// changing callers.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Logger is the logging interface used by the mailer.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
