package reservation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/penzionapp/guesthouse-booking-backend/internal/calendar"
	"github.com/penzionapp/guesthouse-booking-backend/internal/room"
)

// Candidate is a strongly typed booking request. Every field is checked by
// Validate before it is trusted anywhere downstream.
type Candidate struct {
	RoomID         string
	CheckIn        time.Time
	CheckOut       time.Time
	GuestName      string
	GuestEmail     string
	GuestPhone     string
	NumberOfGuests int
}

// Validation is the outcome of checking a candidate booking. Errors holds
// every failed check in check order, so the guest sees the full list at once.
type Validation struct {
	Valid  bool
	Errors []string
}

// emailPattern accepts a basic local@domain.tld shape; full address
// validation is the mail server's job.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

var phoneAllowed = regexp.MustCompile(`^[0-9+\-() ]+$`)

// Validate decides whether a candidate booking may be accepted. It is a pure
// function over the supplied snapshots: no I/O, no mutation, and the same
// inputs always produce the same outcome.
//
// All failing checks are accumulated rather than short-circuiting, except
// that night-count and collision checks are skipped when the date range
// itself is nonsensical. The collision check reports only the first
// conflicting slot in chronological order.
func Validate(c Candidate, rm *room.Room, stays []calendar.Stay, blocks []calendar.Blocked, today time.Time) Validation {
	var errs []string

	if !rm.Available {
		errs = append(errs, "room is not available for booking")
	}
	if c.NumberOfGuests > rm.Capacity {
		errs = append(errs, fmt.Sprintf("number of guests exceeds the room capacity of %d", rm.Capacity))
	}
	if calendar.IsPast(c.CheckIn, today) {
		errs = append(errs, "check-in date is in the past")
	}
	if calendar.IsPast(c.CheckOut, today) {
		errs = append(errs, "check-out date is in the past")
	}

	datesSane := calendar.Day(c.CheckOut).After(calendar.Day(c.CheckIn))
	if !datesSane {
		errs = append(errs, "check-out must be after check-in")
	} else {
		nights := calendar.Nights(c.CheckIn, c.CheckOut)
		if nights < 1 {
			errs = append(errs, "stay must be at least one night")
		}
		if min := rm.MinimumStay(); nights < min {
			errs = append(errs, fmt.Sprintf("minimum stay for this room is %d nights", min))
		}
		if col, found := calendar.FindCollision(calendar.SlotsFor(c.CheckIn, c.CheckOut), stays, blocks); found {
			errs = append(errs, collisionMessage(col))
		}
	}

	if name := strings.TrimSpace(c.GuestName); utf8.RuneCountInString(name) < 2 {
		errs = append(errs, "guest name must be at least 2 characters")
	}
	if !emailPattern.MatchString(c.GuestEmail) {
		errs = append(errs, "guest email is not a valid address")
	}
	if !validPhone(c.GuestPhone) {
		errs = append(errs, "guest phone must contain at least 9 digits")
	}
	if c.NumberOfGuests < 1 {
		errs = append(errs, "number of guests must be at least 1")
	}

	return Validation{Valid: len(errs) == 0, Errors: errs}
}

func collisionMessage(col calendar.Collision) string {
	slot := fmt.Sprintf("%s %s", col.Slot.Date.Format(calendar.DateLayout), col.Slot.Half)
	if col.Block {
		return fmt.Sprintf("slot %s is blocked", slot)
	}
	return fmt.Sprintf("slot %s is already reserved", slot)
}

func validPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if phone == "" || !phoneAllowed.MatchString(phone) {
		return false
	}
	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 9
}

// excludeStay filters out the stay with the given ID, so an edited
// reservation does not collide with itself.
func excludeStay(stays []calendar.Stay, id string) []calendar.Stay {
	out := make([]calendar.Stay, 0, len(stays))
	for _, s := range stays {
		if s.ID != id {
			out = append(out, s)
		}
	}
	return out
}
