package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/penzionapp/guesthouse-booking-backend/internal/calendar"
	"github.com/penzionapp/guesthouse-booking-backend/internal/reservation"
	"github.com/penzionapp/guesthouse-booking-backend/internal/settings"
)

// SMSClient posts messages to a generic REST SMS gateway: JSON body, bearer
// key. The gateway URL and key come from the operator settings.
type SMSClient struct {
	client *http.Client
}

func NewSMSClient() *SMSClient {
	return &SMSClient{client: &http.Client{Timeout: 30 * time.Second}}
}

type smsPayload struct {
	To      string `json:"to"`
	Message string `json:"message"`
	From    string `json:"from,omitempty"`
}

// Send delivers one SMS. An unconfigured gateway is an error here; callers
// that want skip-when-unconfigured check the config first.
func (c *SMSClient) Send(cfg settings.SMSConfig, phone, message string) error {
	if cfg.APIURL == "" || cfg.APIKey == "" {
		return fmt.Errorf("sms gateway is not configured")
	}

	body, err := json.Marshal(smsPayload{To: phone, Message: message, From: cfg.Sender})
	if err != nil {
		return fmt.Errorf("failed to encode sms payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, cfg.APIURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("sms gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("sms gateway returned status %d", resp.StatusCode)
	}
	return nil
}

func (n *Notifier) sendSMS(cfg settings.Settings, r *reservation.Reservation) error {
	if cfg.SMS.APIURL == "" || cfg.SMS.APIKey == "" {
		log.Printf("notify: SMS not configured, skipping for reservation %s", r.ID)
		return nil
	}

	message := fmt.Sprintf(
		"Děkujeme za rezervaci! ID: %s, Pokoj: %s, %s - %s",
		r.ID, r.RoomName,
		r.CheckIn.Format(calendar.DateLayout), r.CheckOut.Format(calendar.DateLayout),
	)
	return n.sms.Send(cfg.SMS, r.GuestPhone, message)
}
