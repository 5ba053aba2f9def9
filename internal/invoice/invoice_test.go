package invoice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	d := Data{
		InvoiceNumber:  "2025-001",
		VariableSymbol: "2025-001",
		IssuedAt:       time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		DueAt:          time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		SupplierName:   "Penzion U Lípy",
		SupplierICO:    "12345678",
		BankAccount:    "19-2000145399/0800",
		CustomerName:   "Jan Novák",
		CustomerEmail:  "jan@example.com",
		CustomerPhone:  "+420 777 123 456",
		RoomName:       "Studio",
		CheckIn:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:       time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
		Nights:         3,
		TotalPrice:     2400,
		DepositAmount:  1200,
	}

	pdf, err := Render(d)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "faktura-2025-001.pdf", Filename("2025-001"))
}
