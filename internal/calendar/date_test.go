package calendar

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateUnmarshalPlainDay(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-06-01"`), &d))
	assert.Equal(t, date("2025-06-01"), d.Time)
}

func TestDateUnmarshalRFC3339Fallback(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-06-01T14:30:00+02:00"`), &d))

	// Only the calendar day survives a full timestamp.
	assert.Equal(t, date("2025-06-01"), d.Time)
}

func TestDateUnmarshalRejectsGarbage(t *testing.T) {
	for _, raw := range []string{`"01.06.2025"`, `"yesterday"`, `20250601`} {
		var d Date
		assert.Error(t, json.Unmarshal([]byte(raw), &d), "input %s", raw)
	}
}

func TestDateMarshal(t *testing.T) {
	out, err := json.Marshal(Date{Time: date("2025-06-01")})
	require.NoError(t, err)
	assert.Equal(t, `"2025-06-01"`, string(out))
}
