package http

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penzionapp/guesthouse-booking-backend/internal/calendar"
)

// Request bodies arrive through gin's JSON binding, which is plain
// encoding/json underneath, so the date fields must decode "2025-06-01"
// style values without any RFC 3339 wrapping.

func TestCreateReservationBodyDecodesPlainDates(t *testing.T) {
	payload := `{
		"roomId": "3f2b49a4-8f1d-4c7e-9d2a-1be0c12f9a77",
		"checkIn": "2025-06-01",
		"checkOut": "2025-06-04",
		"guestName": "Jan Novák",
		"guestEmail": "jan@example.com",
		"guestPhone": "+420 777 123 456",
		"numberOfGuests": 2
	}`

	var body CreateReservationBody
	require.NoError(t, json.Unmarshal([]byte(payload), &body))

	assert.Equal(t, "2025-06-01", body.CheckIn.Format(calendar.DateLayout))
	assert.Equal(t, "2025-06-04", body.CheckOut.Format(calendar.DateLayout))
	assert.Equal(t, "Jan Novák", body.GuestName)
}

func TestUpdateReservationBodyDecodesPlainDates(t *testing.T) {
	payload := `{"checkIn": "2025-07-10", "checkOut": "2025-07-12"}`

	var body UpdateReservationBody
	require.NoError(t, json.Unmarshal([]byte(payload), &body))

	require.NotNil(t, body.CheckIn)
	require.NotNil(t, body.CheckOut)
	assert.Equal(t, "2025-07-10", body.CheckIn.Format(calendar.DateLayout))
	assert.Equal(t, "2025-07-12", body.CheckOut.Format(calendar.DateLayout))
	assert.Nil(t, body.GuestName, "omitted fields stay nil")
}
