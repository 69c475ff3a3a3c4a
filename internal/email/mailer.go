package email

import (
	"github.com/sirupsen/logrus"
)

// BookingEmail is the data both outbound mails are rendered from.
type BookingEmail struct {
	CustomerName string
	Email        string
	Phone        string
	ServiceID    string
	Date         string
	Time         string
	Notes        string
}

// Mailer delivers the two booking side effects. Failures are the caller's
// to log; a booking never rolls back because a mail did not send.
type Mailer interface {
	// Configured reports whether sends will actually go out, so the
	// booking response can tell the customer their confirmation was
	// skipped.
	Configured() bool

	SendBookingConfirmation(b BookingEmail) error
	SendAdminNotification(b BookingEmail) error
}

// NoopMailer is used when no RESEND_API_KEY is set: every send is skipped
// and logged, matching the demo deployment mode.
type NoopMailer struct{}

func NewNoop() *NoopMailer {
	return &NoopMailer{}
}

func (*NoopMailer) Configured() bool { return false }

func (*NoopMailer) SendBookingConfirmation(b BookingEmail) error {
	logrus.WithField("to", b.Email).
		Info("email service not configured, skipping confirmation email")
	return nil
}

func (*NoopMailer) SendAdminNotification(b BookingEmail) error {
	logrus.Info("email service not configured, skipping admin notification")
	return nil
}
