package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNights(t *testing.T) {
	assert.Equal(t, 3, Nights(date("2025-06-01"), date("2025-06-04")))
	assert.Equal(t, 1, Nights(date("2025-06-01"), date("2025-06-02")))
	assert.Equal(t, 0, Nights(date("2025-06-01"), date("2025-06-01")), "same-day stay is zero nights")
	assert.Equal(t, 0, Nights(date("2025-06-04"), date("2025-06-01")), "inverted range is zero nights")
}

func TestSlotsFor(t *testing.T) {
	slots := SlotsFor(date("2025-06-01"), date("2025-06-04"))

	// PM on arrival day, AM+PM on each middle day, AM on departure day.
	require.Len(t, slots, 6)
	assert.Equal(t, Slot{Date: date("2025-06-01"), Half: PM}, slots[0])
	assert.Equal(t, Slot{Date: date("2025-06-02"), Half: AM}, slots[1])
	assert.Equal(t, Slot{Date: date("2025-06-02"), Half: PM}, slots[2])
	assert.Equal(t, Slot{Date: date("2025-06-03"), Half: AM}, slots[3])
	assert.Equal(t, Slot{Date: date("2025-06-03"), Half: PM}, slots[4])
	assert.Equal(t, Slot{Date: date("2025-06-04"), Half: AM}, slots[5])
}

func TestSlotsForSlotCount(t *testing.T) {
	// 2*(nights-1)+2 slots for any valid range.
	for nights := 1; nights <= 14; nights++ {
		in := date("2025-03-01")
		out := in.AddDate(0, 0, nights)
		assert.Len(t, SlotsFor(in, out), 2*(nights-1)+2, "nights=%d", nights)
	}
	assert.Empty(t, SlotsFor(date("2025-03-01"), date("2025-03-01")))
}

func TestOneNightStay(t *testing.T) {
	slots := SlotsFor(date("2025-06-01"), date("2025-06-02"))
	require.Len(t, slots, 2)
	assert.Equal(t, Slot{Date: date("2025-06-01"), Half: PM}, slots[0])
	assert.Equal(t, Slot{Date: date("2025-06-02"), Half: AM}, slots[1])
}

func TestIsPast(t *testing.T) {
	today := date("2025-06-15")
	assert.True(t, IsPast(date("2025-06-14"), today))
	assert.False(t, IsPast(date("2025-06-15"), today))
	assert.False(t, IsPast(date("2025-06-16"), today))
}

func TestFindCollisionAgainstReservation(t *testing.T) {
	stays := []Stay{{ID: "res-1", CheckIn: date("2025-06-01"), CheckOut: date("2025-06-04")}}

	// Jun 3 -> Jun 5 overlaps: Jun 3 AM is free, Jun 3 PM is claimed by res-1.
	candidate := SlotsFor(date("2025-06-03"), date("2025-06-05"))
	col, found := FindCollision(candidate, stays, nil)
	require.True(t, found)
	assert.Equal(t, "res-1", col.ReservationID)
	assert.Equal(t, Slot{Date: date("2025-06-03"), Half: PM}, col.Slot, "earliest colliding slot wins")
}

func TestBackToBackTurnover(t *testing.T) {
	// A checks out on the day B checks in: A holds the AM, B takes the PM.
	stays := []Stay{{ID: "res-a", CheckIn: date("2025-06-01"), CheckOut: date("2025-06-04")}}

	candidate := SlotsFor(date("2025-06-04"), date("2025-06-06"))
	_, found := FindCollision(candidate, stays, nil)
	assert.False(t, found)
}

func TestCancelledStayNeverCollides(t *testing.T) {
	stays := []Stay{{ID: "res-1", CheckIn: date("2025-06-01"), CheckOut: date("2025-06-04"), Cancelled: true}}

	candidate := SlotsFor(date("2025-06-01"), date("2025-06-04"))
	_, found := FindCollision(candidate, stays, nil)
	assert.False(t, found)
}

func TestFindCollisionAgainstBlock(t *testing.T) {
	blocks := []Blocked{{Date: date("2025-06-02"), Half: AM, Reason: "maintenance"}}

	candidate := SlotsFor(date("2025-06-01"), date("2025-06-03"))
	col, found := FindCollision(candidate, nil, blocks)
	require.True(t, found)
	assert.True(t, col.Block)
	assert.Equal(t, "maintenance", col.BlockReason)
	assert.Equal(t, Slot{Date: date("2025-06-02"), Half: AM}, col.Slot)

	// A block on the other half of the turnover day does not collide.
	pmOnly := []Blocked{{Date: date("2025-06-03"), Half: PM}}
	_, found = FindCollision(SlotsFor(date("2025-06-01"), date("2025-06-03")), nil, pmOnly)
	assert.False(t, found)
}

func TestFindCollisionReportsEarliestSlot(t *testing.T) {
	// Both a block and a reservation sit inside the range; the earlier slot
	// must be the one reported.
	stays := []Stay{{ID: "res-late", CheckIn: date("2025-06-05"), CheckOut: date("2025-06-07")}}
	blocks := []Blocked{{Date: date("2025-06-02"), Half: PM, Reason: "cleaning"}}

	candidate := SlotsFor(date("2025-06-01"), date("2025-06-06"))
	col, found := FindCollision(candidate, stays, blocks)
	require.True(t, found)
	assert.True(t, col.Block)
	assert.Equal(t, Slot{Date: date("2025-06-02"), Half: PM}, col.Slot)
}
