package settings

import (
	"net/http"

	"github.com/penzionapp/guesthouse-booking-backend/internal/pkg/apperror"
)

// Guesthouse holds the operator identity printed on invoices and used for
// payment instructions.
type Guesthouse struct {
	Name              string `json:"name"`
	ICO               string `json:"ico"`
	DIC               string `json:"dic"`
	Address           string `json:"address"`
	BankAccount       string `json:"bankAccount"`
	DepositPercentage int    `json:"depositPercentage"`
}

// EmailConfig configures outgoing guest notifications. Notifications are
// skipped entirely when SMTPHost is empty.
type EmailConfig struct {
	SMTPHost string `json:"smtpHost"`
	SMTPPort int    `json:"smtpPort"`
	Username string `json:"username"`
	Password string `json:"password"`
	From     string `json:"from"`
}

// SMSConfig configures the REST SMS gateway. Skipped when APIURL is empty.
type SMSConfig struct {
	APIURL string `json:"apiUrl"`
	APIKey string `json:"apiKey"`
	Sender string `json:"sender"`
}

// Settings is the single operator configuration record.
type Settings struct {
	Guesthouse Guesthouse  `json:"guesthouse"`
	Email      EmailConfig `json:"email"`
	SMS        SMSConfig   `json:"sms"`
}

// Defaults returns the configuration used before the operator saves anything.
func Defaults() Settings {
	return Settings{
		Guesthouse: Guesthouse{DepositPercentage: 50},
	}
}

var ErrInvalidDepositPct = apperror.New(http.StatusBadRequest, "deposit percentage must be between 0 and 100")

// Validate rejects values that would produce nonsense deposits.
func (s Settings) Validate() error {
	if s.Guesthouse.DepositPercentage < 0 || s.Guesthouse.DepositPercentage > 100 {
		return ErrInvalidDepositPct
	}
	return nil
}
