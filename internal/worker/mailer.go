package worker

import (
	"context"
	"log/slog"
)

type Email struct {
	To      string `json:"to"`
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Body    string `json:"body"`

	BookingRequestID *int64 `json:"booking_request_id,omitempty"`
}

type Mailer interface {
	Send(ctx context.Context, email Email) error
}

// LogMailer writes the email to the log instead of an SMTP relay. Swapping in
// a real Mailer is a wiring change only.
type LogMailer struct{}

func NewLogMailer() Mailer {
	return &LogMailer{}
}

func (m *LogMailer) Send(_ context.Context, email Email) error {
	slog.Info("sending email",
		"to", email.To,
		"name", email.Name,
		"subject", email.Subject,
		"body", email.Body)
	return nil
}
