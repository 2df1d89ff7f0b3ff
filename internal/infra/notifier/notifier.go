package notifier

import (
	"context"
	"log/slog"
)

// Console senders stand in for the real email/SMS providers. The reminder job
// only depends on the sender interfaces, so swapping in SES or Twilio later is
// a wiring change.
type ConsoleEmailSender struct{}

func NewConsoleEmailSender() *ConsoleEmailSender {
	return &ConsoleEmailSender{}
}

func (s *ConsoleEmailSender) SendEmail(ctx context.Context, to, subject, body string) error {
	slog.InfoContext(ctx, "email dispatched",
		"to", to,
		"subject", subject,
		"body", body)
	return nil
}

type ConsoleSMSSender struct{}

func NewConsoleSMSSender() *ConsoleSMSSender {
	return &ConsoleSMSSender{}
}

func (s *ConsoleSMSSender) SendSMS(ctx context.Context, number, body string) error {
	slog.InfoContext(ctx, "sms dispatched",
		"number", number,
		"body", body)
	return nil
}
