package mailer

import "context"

// StubSender logs instead of sending, for local runs without an API key.
type StubSender struct {
	logger Logger
}

// NewStubSender creates a sender that only logs.
func NewStubSender(logger Logger) *StubSender {
	return &StubSender{logger: logger}
}

// Send logs the message and drops it.
func (s *StubSender) Send(ctx context.Context, msg Message) error {
	s.logger.Info("Send: mail disabled, would send to=%s subject=%q", msg.To, msg.Subject)
	return nil
}
