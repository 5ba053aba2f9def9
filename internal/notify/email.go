package notify

import (
	"fmt"
	"io"
	"log"
	"strings"

	gomail "gopkg.in/gomail.v2"

	"github.com/penzionapp/guesthouse-booking-backend/internal/calendar"
	"github.com/penzionapp/guesthouse-booking-backend/internal/invoice"
	"github.com/penzionapp/guesthouse-booking-backend/internal/payment"
	"github.com/penzionapp/guesthouse-booking-backend/internal/reservation"
	"github.com/penzionapp/guesthouse-booking-backend/internal/settings"
)

// sendEmail builds and sends the confirmation email: reservation summary,
// payment details, deposit and full-amount QR codes and the PDF invoice.
// An incomplete SMTP configuration skips the email entirely.
func (n *Notifier) sendEmail(cfg settings.Settings, r *reservation.Reservation) error {
	email := cfg.Email
	if email.SMTPHost == "" || email.Username == "" || email.Password == "" {
		log.Printf("notify: email not configured, skipping for reservation %s", r.ID)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", fromAddress(email))
	m.SetHeader("To", r.GuestEmail)
	m.SetHeader("Subject", fmt.Sprintf("Potvrzení rezervace #%s", r.ID))
	m.SetBody("text/html", emailBody(cfg, r))

	if cfg.Guesthouse.Name != "" && cfg.Guesthouse.ICO != "" {
		pdf, err := invoice.Render(invoiceData(r, cfg.Guesthouse))
		if err != nil {
			// The confirmation still goes out without the attachment.
			log.Printf("notify: invoice PDF for reservation %s failed: %v", r.ID, err)
		} else {
			m.Attach(invoice.Filename(r.InvoiceNumber), gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(pdf)
				return err
			}))
		}
	}

	d := gomail.NewDialer(email.SMTPHost, email.SMTPPort, email.Username, email.Password)
	return d.DialAndSend(m)
}

func fromAddress(email settings.EmailConfig) string {
	from := strings.TrimSpace(email.From)
	if from == "" {
		return email.Username
	}
	if strings.Contains(from, "<") {
		return from
	}
	return fmt.Sprintf("%s <%s>", from, email.Username)
}

func emailBody(cfg settings.Settings, r *reservation.Reservation) string {
	var b strings.Builder
	b.WriteString("<h2>Děkujeme za vaši rezervaci!</h2>")
	b.WriteString("<p>Vaše rezervace byla úspěšně vytvořena.</p>")
	b.WriteString("<h3>Detaily rezervace:</h3><ul>")
	fmt.Fprintf(&b, "<li><strong>ID rezervace:</strong> %s</li>", r.ID)
	fmt.Fprintf(&b, "<li><strong>Pokoj:</strong> %s</li>", r.RoomName)
	fmt.Fprintf(&b, "<li><strong>Příjezd:</strong> %s</li>", r.CheckIn.Format(calendar.DateLayout))
	fmt.Fprintf(&b, "<li><strong>Odjezd:</strong> %s</li>", r.CheckOut.Format(calendar.DateLayout))
	fmt.Fprintf(&b, "<li><strong>Počet nocí:</strong> %d</li>", r.Nights)
	fmt.Fprintf(&b, "<li><strong>Celková cena:</strong> %d Kč</li>", r.TotalPrice)
	fmt.Fprintf(&b, "<li><strong>Počet osob:</strong> %d</li>", r.NumberOfGuests)
	b.WriteString("</ul>")
	if r.Note != "" {
		fmt.Fprintf(&b, "<p><strong>Poznámka:</strong> %s</p>", r.Note)
	}

	b.WriteString("<h3>Platební údaje:</h3>")
	account := cfg.Guesthouse.BankAccount
	if account != "" {
		fmt.Fprintf(&b, "<p><strong>Číslo účtu:</strong> %s</p>", account)
	}
	fmt.Fprintf(&b, "<p><strong>Variabilní symbol:</strong> %s</p>", r.VariableSymbol)
	if r.DepositAmount > 0 && r.TotalPrice > 0 {
		pct := (r.DepositAmount*100 + r.TotalPrice/2) / r.TotalPrice
		fmt.Fprintf(&b, "<p><strong>Záloha (%d%%):</strong> %d Kč</p>", pct, r.DepositAmount)
		fmt.Fprintf(&b, "<p><strong>Doplatek (%d%%):</strong> %d Kč</p>", 100-pct, r.TotalPrice-r.DepositAmount)
	}

	if account != "" && r.VariableSymbol != "" {
		if r.DepositAmount > 0 {
			if qr, err := payment.QRCodeDataURL(account, r.DepositAmount, r.VariableSymbol, fmt.Sprintf("Zaloha rezervace %s", r.ID)); err == nil {
				b.WriteString("<h4>QR kód pro platbu zálohy:</h4>")
				fmt.Fprintf(&b, `<img src="%s" alt="QR kód pro zálohu" style="max-width: 300px;" />`, qr)
			}
		}
		if qr, err := payment.QRCodeDataURL(account, r.TotalPrice, r.VariableSymbol, fmt.Sprintf("Rezervace %s", r.ID)); err == nil {
			b.WriteString("<h4>QR kód pro platbu celé částky:</h4>")
			fmt.Fprintf(&b, `<img src="%s" alt="QR kód pro celou částku" style="max-width: 300px;" />`, qr)
		}
	}

	b.WriteString("<p>Brzy se na vás těšíme!</p>")
	return b.String()
}

func invoiceData(r *reservation.Reservation, gh settings.Guesthouse) invoice.Data {
	return invoice.Data{
		InvoiceNumber:   r.InvoiceNumber,
		VariableSymbol:  r.VariableSymbol,
		IssuedAt:        r.CreatedAt,
		DueAt:           r.CheckIn,
		SupplierName:    gh.Name,
		SupplierICO:     gh.ICO,
		SupplierDIC:     gh.DIC,
		SupplierAddress: gh.Address,
		BankAccount:     gh.BankAccount,
		CustomerName:    r.GuestName,
		CustomerEmail:   r.GuestEmail,
		CustomerPhone:   r.GuestPhone,
		RoomName:        r.RoomName,
		CheckIn:         r.CheckIn,
		CheckOut:        r.CheckOut,
		Nights:          r.Nights,
		TotalPrice:      r.TotalPrice,
		DepositAmount:   r.DepositAmount,
	}
}
