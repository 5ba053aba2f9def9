// Package notify delivers guest-facing confirmations over email and SMS.
//
// Delivery is best-effort: an unconfigured channel is skipped and a failed
// send is logged, never surfaced to the booking flow.
package notify

import (
	"context"
	"log"

	"github.com/penzionapp/guesthouse-booking-backend/internal/reservation"
	"github.com/penzionapp/guesthouse-booking-backend/internal/settings"
)

type Notifier struct {
	config settings.Repository
	sms    *SMSClient
}

func NewNotifier(config settings.Repository) *Notifier {
	return &Notifier{config: config, sms: NewSMSClient()}
}

// ReservationCreated sends the confirmation email and SMS for a freshly
// created reservation. It runs in its own goroutine; the booking response
// never waits for it.
func (n *Notifier) ReservationCreated(r *reservation.Reservation) {
	cfg, err := n.config.Get(context.Background())
	if err != nil {
		log.Printf("notify: failed to load settings, skipping notifications for %s: %v", r.ID, err)
		return
	}

	if err := n.sendEmail(cfg, r); err != nil {
		log.Printf("notify: email for reservation %s failed: %v", r.ID, err)
	}
	if err := n.sendSMS(cfg, r); err != nil {
		log.Printf("notify: SMS for reservation %s failed: %v", r.ID, err)
	}
}
