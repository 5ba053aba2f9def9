package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penzionapp/guesthouse-booking-backend/internal/calendar"
	"github.com/penzionapp/guesthouse-booking-backend/internal/pricing"
	"github.com/penzionapp/guesthouse-booking-backend/internal/room"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var today = date(2025, 5, 1)

func testRoom() *room.Room {
	return &room.Room{
		ID:            "room-1",
		Name:          "Studio",
		Capacity:      2,
		PricePerNight: 800,
		PricingModel:  pricing.ModelSimple,
		Available:     true,
	}
}

func validCandidate() Candidate {
	return Candidate{
		RoomID:         "room-1",
		CheckIn:        date(2025, 6, 1),
		CheckOut:       date(2025, 6, 4),
		GuestName:      "Jan Novák",
		GuestEmail:     "jan@example.com",
		GuestPhone:     "+420 777 123 456",
		NumberOfGuests: 2,
	}
}

func TestValidateAccepts(t *testing.T) {
	v := Validate(validCandidate(), testRoom(), nil, nil, today)
	assert.True(t, v.Valid)
	assert.Empty(t, v.Errors)
}

func TestValidateUnavailableRoom(t *testing.T) {
	rm := testRoom()
	rm.Available = false

	v := Validate(validCandidate(), rm, nil, nil, today)
	assert.False(t, v.Valid)
	assert.Contains(t, v.Errors, "room is not available for booking")
}

func TestValidateCapacity(t *testing.T) {
	c := validCandidate()
	c.NumberOfGuests = 3

	v := Validate(c, testRoom(), nil, nil, today)
	assert.False(t, v.Valid)
	assert.Contains(t, v.Errors, "number of guests exceeds the room capacity of 2")
}

func TestValidatePastDates(t *testing.T) {
	c := validCandidate()
	c.CheckIn = date(2025, 4, 28)
	c.CheckOut = date(2025, 4, 30)

	v := Validate(c, testRoom(), nil, nil, today)
	assert.False(t, v.Valid)
	assert.Contains(t, v.Errors, "check-in date is in the past")
	assert.Contains(t, v.Errors, "check-out date is in the past")
}

func TestValidateInvertedDatesSkipNightChecks(t *testing.T) {
	c := validCandidate()
	c.CheckIn = date(2025, 6, 4)
	c.CheckOut = date(2025, 6, 1)

	v := Validate(c, testRoom(), nil, nil, today)
	assert.False(t, v.Valid)
	assert.Contains(t, v.Errors, "check-out must be after check-in")
	// Night-count-dependent messages must not pile on top of nonsense dates.
	for _, e := range v.Errors {
		assert.NotContains(t, e, "minimum stay")
		assert.NotContains(t, e, "already reserved")
	}
}

func TestValidateMinimumStay(t *testing.T) {
	rm := testRoom()
	rm.PricingModel = pricing.ModelSeasonal
	rm.SeasonalPricing = &pricing.Seasonal{
		MainSeason: pricing.Table{7: 49000},
		OffSeason:  pricing.Table{5: 30000},
	}

	c := validCandidate()
	c.CheckIn = date(2025, 7, 1)
	c.CheckOut = date(2025, 7, 4)

	v := Validate(c, rm, nil, nil, today)
	assert.False(t, v.Valid)
	assert.Contains(t, v.Errors, "minimum stay for this room is 5 nights")
}

func TestValidateCollisionReportsFirstSlot(t *testing.T) {
	existing := []calendar.Stay{{
		ID:       "existing",
		CheckIn:  date(2025, 6, 1),
		CheckOut: date(2025, 6, 4),
	}}

	c := validCandidate()
	c.CheckIn = date(2025, 6, 3)
	c.CheckOut = date(2025, 6, 5)

	v := Validate(c, testRoom(), existing, nil, today)
	assert.False(t, v.Valid)
	assert.Contains(t, v.Errors, "slot 2025-06-03 PM is already reserved")
}

func TestValidateCancelledStayFreesSlots(t *testing.T) {
	existing := []calendar.Stay{{
		ID:        "cancelled",
		CheckIn:   date(2025, 6, 1),
		CheckOut:  date(2025, 6, 4),
		Cancelled: true,
	}}

	v := Validate(validCandidate(), testRoom(), existing, nil, today)
	assert.True(t, v.Valid)
}

func TestValidateBlockedSlot(t *testing.T) {
	blocked := []calendar.Blocked{{Date: date(2025, 6, 2), Half: calendar.AM, Reason: "maintenance"}}

	v := Validate(validCandidate(), testRoom(), nil, blocked, today)
	assert.False(t, v.Valid)
	assert.Contains(t, v.Errors, "slot 2025-06-02 AM is blocked")
}

func TestValidateBackToBackTurnover(t *testing.T) {
	existing := []calendar.Stay{{
		ID:       "earlier",
		CheckIn:  date(2025, 5, 29),
		CheckOut: date(2025, 6, 1),
	}}

	// Previous guest leaves the morning the next one arrives.
	v := Validate(validCandidate(), testRoom(), existing, nil, today)
	assert.True(t, v.Valid)
}

func TestValidateGuestFields(t *testing.T) {
	c := validCandidate()
	c.GuestName = " a "
	c.GuestEmail = "not-an-email"
	c.GuestPhone = "12345"
	c.NumberOfGuests = 0

	v := Validate(c, testRoom(), nil, nil, today)
	assert.False(t, v.Valid)
	assert.Contains(t, v.Errors, "guest name must be at least 2 characters")
	assert.Contains(t, v.Errors, "guest email is not a valid address")
	assert.Contains(t, v.Errors, "guest phone must contain at least 9 digits")
	assert.Contains(t, v.Errors, "number of guests must be at least 1")
}

func TestValidatePhoneShapes(t *testing.T) {
	cases := []struct {
		phone string
		ok    bool
	}{
		{"+420 777 123 456", true},
		{"(0049) 170-1234567", true},
		{"777123456", true},
		{"77712345", false},
		{"777123456x", false},
		{"", false},
	}
	for _, tc := range cases {
		c := validCandidate()
		c.GuestPhone = tc.phone
		v := Validate(c, testRoom(), nil, nil, today)
		assert.Equal(t, tc.ok, v.Valid, "phone %q", tc.phone)
	}
}

func TestValidateAccumulatesInCheckOrder(t *testing.T) {
	rm := testRoom()
	rm.Available = false

	c := validCandidate()
	c.NumberOfGuests = 3
	c.GuestEmail = "bad"

	v := Validate(c, rm, nil, nil, today)
	require.Len(t, v.Errors, 3)
	assert.Equal(t, "room is not available for booking", v.Errors[0])
	assert.Equal(t, "number of guests exceeds the room capacity of 2", v.Errors[1])
	assert.Equal(t, "guest email is not a valid address", v.Errors[2])
}

func TestValidateGuestNameCountsRunes(t *testing.T) {
	// "Ž" is two bytes but one character; it must still be too short.
	c := validCandidate()
	c.GuestName = "Ž"
	v := Validate(c, testRoom(), nil, nil, today)
	assert.Contains(t, v.Errors, "guest name must be at least 2 characters")

	c.GuestName = "Ža"
	v = Validate(c, testRoom(), nil, nil, today)
	assert.True(t, v.Valid)
}

func TestEditedReservationDoesNotCollideWithItself(t *testing.T) {
	// Re-checking a reservation's own range must not report the reservation
	// as occupying its slots, or an edit that keeps the dates would fail.
	c := validCandidate()
	stays := []calendar.Stay{
		{ID: "self", CheckIn: c.CheckIn, CheckOut: c.CheckOut},
		{ID: "other", CheckIn: date(2025, 6, 10), CheckOut: date(2025, 6, 12)},
	}
	slots := calendar.SlotsFor(c.CheckIn, c.CheckOut)

	col, found := calendar.FindCollision(slots, stays, nil)
	require.True(t, found)
	assert.Equal(t, "self", col.ReservationID)

	filtered := excludeStay(stays, "self")
	require.Len(t, filtered, 1)
	assert.Equal(t, "other", filtered[0].ID)

	_, found = calendar.FindCollision(slots, filtered, nil)
	assert.False(t, found)

	// The edited range still collides with everyone else.
	moved := calendar.SlotsFor(date(2025, 6, 9), date(2025, 6, 11))
	col, found = calendar.FindCollision(moved, filtered, nil)
	require.True(t, found)
	assert.Equal(t, "other", col.ReservationID)
}
