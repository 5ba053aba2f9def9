// Package invoice renders reservation invoices as PDF documents.
package invoice

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

// Data is everything one invoice needs, flattened so this package stays
// independent of the reservation and settings models.
type Data struct {
	InvoiceNumber  string
	VariableSymbol string
	IssuedAt       time.Time
	DueAt          time.Time

	SupplierName    string
	SupplierICO     string
	SupplierDIC     string
	SupplierAddress string
	BankAccount     string

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	RoomName   string
	CheckIn    time.Time
	CheckOut   time.Time
	Nights     int
	TotalPrice int

	DepositAmount int
}

const czechDate = "02.01.2006"

// Render produces the invoice PDF: supplier header, invoice identifiers, the
// customer block, a single stay line with the per-night rate, the total, the
// deposit split when a deposit applies, and payment details.
func Render(d Data) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// Core fonts cover a single code page; cp1250 carries Czech diacritics.
	tr := pdf.UnicodeTranslatorFromDescriptor("cp1250")

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Text(20, 40, tr("FAKTURA"))

	pdf.SetFont("Helvetica", "", 12)
	y := 70.0
	pdf.Text(20, y, tr(d.SupplierName))
	pdf.SetFont("Helvetica", "", 10)
	y += 15
	pdf.Text(20, y, tr(fmt.Sprintf("IČO: %s", d.SupplierICO)))
	if d.SupplierDIC != "" {
		y += 12
		pdf.Text(20, y, tr(fmt.Sprintf("DIČ: %s", d.SupplierDIC)))
	}
	if d.SupplierAddress != "" {
		y += 12
		pdf.Text(20, y, tr(d.SupplierAddress))
	}

	right := 350.0
	pdf.Text(right, 70, tr(fmt.Sprintf("Číslo faktury: %s", d.InvoiceNumber)))
	pdf.Text(right, 82, tr(fmt.Sprintf("Variabilní symbol: %s", d.VariableSymbol)))
	pdf.Text(right, 94, tr(fmt.Sprintf("Datum vystavení: %s", d.IssuedAt.Format(czechDate))))
	pdf.Text(right, 106, tr(fmt.Sprintf("Datum splatnosti: %s", d.DueAt.Format(czechDate))))

	y = 150
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(20, y, tr("Odběratel:"))
	pdf.SetFont("Helvetica", "", 10)
	y += 18
	pdf.Text(20, y, tr(d.CustomerName))
	y += 15
	pdf.Text(20, y, tr(d.CustomerEmail))
	y += 15
	pdf.Text(20, y, tr(d.CustomerPhone))

	y += 30
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(20, y, tr("Položka"))
	pdf.Text(300, y, tr("Množství"))
	pdf.Text(400, y, tr("Cena"))
	pdf.Text(500, y, tr("Celkem"))
	y += 6
	pdf.Line(20, y, 575, y)

	y += 18
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(20, y, tr(fmt.Sprintf("Pobyt: %s", d.RoomName)))
	pdf.Text(300, y, tr(fmt.Sprintf("%d nocí", d.Nights)))
	if d.Nights > 0 {
		pdf.Text(400, y, tr(fmt.Sprintf("%d Kč/noc", roundDiv(d.TotalPrice, d.Nights))))
	}
	pdf.Text(500, y, tr(fmt.Sprintf("%d Kč", d.TotalPrice)))
	y += 15
	pdf.Text(20, y, tr(fmt.Sprintf("%s - %s", d.CheckIn.Format(czechDate), d.CheckOut.Format(czechDate))))

	y += 10
	pdf.Line(20, y, 575, y)
	y += 20
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(380, y, tr("Celkem k úhradě:"))
	pdf.Text(500, y, tr(fmt.Sprintf("%d Kč", d.TotalPrice)))

	if d.DepositAmount > 0 && d.TotalPrice > 0 {
		depositPct := roundDiv(d.DepositAmount*100, d.TotalPrice)
		y += 25
		pdf.SetFont("Helvetica", "", 10)
		pdf.Text(20, y, tr(fmt.Sprintf("Záloha (%d%%): %d Kč", depositPct, d.DepositAmount)))
		y += 15
		pdf.Text(20, y, tr(fmt.Sprintf("Doplatek (%d%%): %d Kč", 100-depositPct, d.TotalPrice-d.DepositAmount)))
	}

	y += 30
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(20, y, tr("Platební údaje:"))
	pdf.SetFont("Helvetica", "", 10)
	if d.BankAccount != "" {
		y += 15
		pdf.Text(20, y, tr(fmt.Sprintf("Číslo účtu: %s", d.BankAccount)))
	}
	y += 15
	pdf.Text(20, y, tr(fmt.Sprintf("Variabilní symbol: %s", d.VariableSymbol)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("invoice: failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename returns the download name for an invoice PDF.
func Filename(invoiceNumber string) string {
	return fmt.Sprintf("faktura-%s.pdf", invoiceNumber)
}

func roundDiv(a, b int) int {
	return (a + b/2) / b
}
