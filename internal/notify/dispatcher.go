package notify

import (
	"github.com/sirupsen/logrus"

	"github.com/celosalong/salon-booking-api/internal/email"
)

// Event is one booking's worth of outbound mail: confirmation to the
// customer (when they left an address) and a notification to the admin.
type Event struct {
	Booking         email.BookingEmail
	ConfirmCustomer bool
}

// Dispatcher sends mail off the request path. The queue is bounded and
// drops on overflow; a full queue must never block or fail a booking.
type Dispatcher struct {
	mailer email.Mailer
	queue  chan Event
}

func NewDispatcher(mailer email.Mailer) *Dispatcher {
	d := &Dispatcher{
		mailer: mailer,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if ev.ConfirmCustomer {
			if err := d.mailer.SendBookingConfirmation(ev.Booking); err != nil {
				logrus.WithError(err).WithField("to", ev.Booking.Email).
					Error("failed to send confirmation email")
			}
		}

		if err := d.mailer.SendAdminNotification(ev.Booking); err != nil {
			logrus.WithError(err).Error("failed to send admin notification")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		logrus.Warn("email queue full, dropping event")
	}
}

// Configured mirrors the mailer so handlers can report email_status.
func (d *Dispatcher) Configured() bool {
	return d.mailer.Configured()
}
