package http

import "github.com/penzionapp/guesthouse-booking-backend/internal/settings"

type GuesthouseBody struct {
	Name              string `json:"name"`
	ICO               string `json:"ico"`
	DIC               string `json:"dic"`
	Address           string `json:"address"`
	BankAccount       string `json:"bankAccount"`
	DepositPercentage *int   `json:"depositPercentage"`
}

type EmailConfigBody struct {
	SMTPHost string `json:"smtpHost"`
	SMTPPort int    `json:"smtpPort"`
	Username string `json:"username"`
	Password string `json:"password"`
	From     string `json:"from"`
}

type SMSConfigBody struct {
	APIURL string `json:"apiUrl"`
	APIKey string `json:"apiKey"`
	Sender string `json:"sender"`
}

type UpdateSettingsBody struct {
	Guesthouse GuesthouseBody  `json:"guesthouse"`
	Email      EmailConfigBody `json:"email"`
	SMS        SMSConfigBody   `json:"sms"`
}

func (b UpdateSettingsBody) ToSettings() settings.Settings {
	depositPct := 50
	if b.Guesthouse.DepositPercentage != nil {
		depositPct = *b.Guesthouse.DepositPercentage
	}
	return settings.Settings{
		Guesthouse: settings.Guesthouse{
			Name:              b.Guesthouse.Name,
			ICO:               b.Guesthouse.ICO,
			DIC:               b.Guesthouse.DIC,
			Address:           b.Guesthouse.Address,
			BankAccount:       b.Guesthouse.BankAccount,
			DepositPercentage: depositPct,
		},
		Email: settings.EmailConfig{
			SMTPHost: b.Email.SMTPHost,
			SMTPPort: b.Email.SMTPPort,
			Username: b.Email.Username,
			Password: b.Email.Password,
			From:     b.Email.From,
		},
		SMS: settings.SMSConfig{
			APIURL: b.SMS.APIURL,
			APIKey: b.SMS.APIKey,
			Sender: b.SMS.Sender,
		},
	}
}
