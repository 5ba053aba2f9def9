package calendar

import (
	"fmt"
	"time"
)

// Date is a calendar day as it travels in JSON request bodies. The standard
// time.Time only unmarshals RFC 3339 timestamps, so plain "2025-06-01"
// values need this wrapper. A full timestamp is still accepted; only the day
// survives either way.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("date must be a JSON string in %s form", DateLayout)
	}
	s = s[1 : len(s)-1]

	t, err := time.Parse(DateLayout, s)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, s); err != nil {
			return fmt.Errorf("invalid date %q, want %s", s, DateLayout)
		}
	}
	d.Time = Day(t)
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}
