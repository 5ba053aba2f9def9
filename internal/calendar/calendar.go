// Package calendar models a room's bookable timeline as half-day slots.
//
// Every calendar day has two independently bookable halves: AM and PM. A stay
// claims the PM half of its check-in day, the AM half of its check-out day and
// both halves of every day in between, so two back-to-back stays can share a
// single turnover day.
package calendar

import "time"

// DateLayout is the wire format for calendar days.
const DateLayout = "2006-01-02"

// HalfDay identifies one half of a calendar day.
type HalfDay string

const (
	AM HalfDay = "AM"
	PM HalfDay = "PM"
)

// Slot is the atomic unit of availability: one half of one calendar day.
type Slot struct {
	Date time.Time
	Half HalfDay
}

// Day truncates t to its calendar day in UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Nights returns the length of a stay in nights, i.e. checkOut minus checkIn
// in whole days. Inverted or same-day ranges count as zero nights.
func Nights(checkIn, checkOut time.Time) int {
	in, out := Day(checkIn), Day(checkOut)
	if !out.After(in) {
		return 0
	}
	return int(out.Sub(in) / (24 * time.Hour))
}

// SlotsFor returns the half-day slots a stay occupies, in chronological order
// (AM before PM within a day). The check-in day contributes only its PM slot,
// the check-out day only its AM slot. A zero-night range occupies nothing.
func SlotsFor(checkIn, checkOut time.Time) []Slot {
	nights := Nights(checkIn, checkOut)
	if nights == 0 {
		return nil
	}

	in := Day(checkIn)
	slots := make([]Slot, 0, 2*nights)
	slots = append(slots, Slot{Date: in, Half: PM})
	for i := 1; i < nights; i++ {
		day := in.AddDate(0, 0, i)
		slots = append(slots, Slot{Date: day, Half: AM}, Slot{Date: day, Half: PM})
	}
	slots = append(slots, Slot{Date: in.AddDate(0, 0, nights), Half: AM})

	return slots
}

// IsPast reports whether date falls strictly before today's calendar day.
// Past slots are never bookable and never blockable.
func IsPast(date, today time.Time) bool {
	return Day(date).Before(Day(today))
}

// Stay is the occupancy-relevant slice of an existing reservation.
type Stay struct {
	ID       string
	CheckIn  time.Time
	CheckOut time.Time

	// Cancelled stays free their slots immediately and never collide.
	Cancelled bool
}

// Blocked is an administratively closed half-day slot.
type Blocked struct {
	Date   time.Time
	Half   HalfDay
	Reason string
}

// Collision describes the first occupied slot a candidate range runs into.
// Exactly one of ReservationID and BlockReason carries the origin: a non-empty
// ReservationID points at the conflicting stay, otherwise the slot is blocked
// (BlockReason may still be empty for a block created without a reason).
type Collision struct {
	Slot          Slot
	ReservationID string
	Block         bool
	BlockReason   string
}

// FindCollision checks the candidate slots, in order, against existing stays
// and blocks and returns the first collision found. Candidate slots produced
// by SlotsFor are chronological, so the reported collision is the earliest
// one (AM before PM). Reservations are checked before blocks on each slot.
func FindCollision(candidate []Slot, stays []Stay, blocks []Blocked) (Collision, bool) {
	for _, slot := range candidate {
		for _, stay := range stays {
			if stay.Cancelled {
				continue
			}
			if occupies(stay, slot) {
				return Collision{Slot: slot, ReservationID: stay.ID}, true
			}
		}
		for _, b := range blocks {
			if Day(b.Date).Equal(slot.Date) && b.Half == slot.Half {
				return Collision{Slot: slot, Block: true, BlockReason: b.Reason}, true
			}
		}
	}
	return Collision{}, false
}

// occupies reports whether the stay claims the given slot.
func occupies(stay Stay, slot Slot) bool {
	in, out := Day(stay.CheckIn), Day(stay.CheckOut)
	if !out.After(in) {
		return false
	}
	if slot.Date.Before(in) || slot.Date.After(out) {
		return false
	}
	if slot.Date.Equal(in) {
		return slot.Half == PM
	}
	if slot.Date.Equal(out) {
		return slot.Half == AM
	}
	return true
}
