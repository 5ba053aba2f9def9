package reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penzionapp/guesthouse-booking-backend/internal/calendar"
	"github.com/penzionapp/guesthouse-booking-backend/internal/pricing"
	"github.com/penzionapp/guesthouse-booking-backend/internal/room"
)

// End-to-end booking scenarios over the pure core: validate, then price the
// accepted stay the way the booking flow does.

func TestBookingSimpleRoomScenario(t *testing.T) {
	rm := testRoom()

	c := validCandidate()
	v := Validate(c, rm, nil, nil, today)
	require.True(t, v.Valid)

	assert.Equal(t, 2400, rm.StayPrice(c.CheckIn, c.CheckOut))
	assert.Equal(t, 1200, pricing.DepositAmount(rm.StayPrice(c.CheckIn, c.CheckOut), 50))

	// Once booked, an overlapping candidate is rejected at its first
	// overlapping slot; after cancellation the slots free up again.
	stays := []calendar.Stay{{ID: "first", CheckIn: c.CheckIn, CheckOut: c.CheckOut}}

	overlapping := validCandidate()
	overlapping.CheckIn = date(2025, 6, 3)
	overlapping.CheckOut = date(2025, 6, 5)

	v = Validate(overlapping, rm, stays, nil, today)
	require.False(t, v.Valid)
	assert.Contains(t, v.Errors, "slot 2025-06-03 PM is already reserved")

	stays[0].Cancelled = true
	v = Validate(overlapping, rm, stays, nil, today)
	assert.True(t, v.Valid)
}

func TestBookingSeasonalRoomScenario(t *testing.T) {
	rm := &room.Room{
		ID:            "apartment",
		Name:          "Apartmán",
		Capacity:      4,
		PricePerNight: 2000,
		PricingModel:  pricing.ModelSeasonal,
		SeasonalPricing: &pricing.Seasonal{
			MainSeason: pricing.Table{7: 49000},
			OffSeason:  pricing.Table{7: 45000},
		},
		Available: true,
	}

	c := Candidate{
		RoomID:         rm.ID,
		CheckIn:        date(2025, 7, 5),
		CheckOut:       date(2025, 7, 12),
		GuestName:      "Jana Dvořáková",
		GuestEmail:     "jana@example.com",
		GuestPhone:     "+420 601 234 567",
		NumberOfGuests: 4,
	}

	v := Validate(c, rm, nil, nil, today)
	require.True(t, v.Valid, "errors: %v", v.Errors)

	// July check-in lands in the main season.
	assert.Equal(t, 49000, rm.StayPrice(c.CheckIn, c.CheckOut))

	// A shorter stay falls below the 7-night floor.
	short := c
	short.CheckOut = date(2025, 7, 10)
	v = Validate(short, rm, nil, nil, today)
	require.False(t, v.Valid)
	assert.Contains(t, v.Errors, "minimum stay for this room is 7 nights")
}
