package http

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penzionapp/guesthouse-booking-backend/internal/calendar"
)

func TestCreateBlockBodyDecodesPlainDate(t *testing.T) {
	payload := `{
		"roomId": "3f2b49a4-8f1d-4c7e-9d2a-1be0c12f9a77",
		"date": "2025-06-02",
		"halfDay": "AM",
		"reason": "maintenance"
	}`

	var body CreateBlockBody
	require.NoError(t, json.Unmarshal([]byte(payload), &body))

	assert.Equal(t, "2025-06-02", body.Date.Format(calendar.DateLayout))
	assert.Equal(t, "AM", body.HalfDay)
}
