// Package pricing computes stay prices and minimum-stay constraints.
//
// Rooms use either a flat per-night rate or a seasonal model: sparse lookup
// tables mapping total nights to a total stay price, segmented into main
// season, off season and optional named holiday windows.
package pricing

import (
	"fmt"
	"sort"
	"time"

	"github.com/penzionapp/guesthouse-booking-backend/internal/calendar"
)

// Model selects how a room is priced.
type Model string

const (
	ModelSimple   Model = "simple"
	ModelSeasonal Model = "seasonal"
)

// Holiday names a fixed holiday window with its own price table.
type Holiday string

const (
	HolidayChristmas Holiday = "christmas"
	HolidayNewYear   Holiday = "newyear"
	HolidayEaster    Holiday = "easter"
)

// holidayOrder is the evaluation order when a stay touches several windows;
// the first match wins.
var holidayOrder = []Holiday{HolidayChristmas, HolidayNewYear, HolidayEaster}

// Table maps a stay length in nights to the total price for that stay.
// Keys are sparse; lookups round down to the largest key not above the
// requested night count and cap at the largest key overall.
type Table map[int]int

// Validate rejects tables with non-positive night keys. Such a table means
// the stored pricing data is corrupted and must not be silently coerced.
func (t Table) Validate() error {
	for nights := range t {
		if nights < 1 {
			return fmt.Errorf("pricing table has non-positive night key %d", nights)
		}
	}
	return nil
}

// lookup resolves a price for the given night count, or false when the table
// is empty.
func (t Table) lookup(nights int) (int, bool) {
	if len(t) == 0 {
		return 0, false
	}
	if price, ok := t[nights]; ok {
		return price, true
	}

	keys := make([]int, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	// Longer than the longest tier pays the longest tier's price.
	if nights > keys[len(keys)-1] {
		return t[keys[len(keys)-1]], true
	}

	// Otherwise round down to the nearest shorter tier.
	best := keys[0]
	for _, k := range keys {
		if k <= nights {
			best = k
		}
	}
	return t[best], true
}

// Seasonal holds the full lookup-table configuration of a seasonal room.
type Seasonal struct {
	MainSeason Table             `json:"mainSeason"`
	OffSeason  Table             `json:"offSeason"`
	Holidays   map[Holiday]Table `json:"holidays,omitempty"`
}

// Validate checks every contained table for corrupted night keys.
func (s *Seasonal) Validate() error {
	if s == nil {
		return nil
	}
	if err := s.MainSeason.Validate(); err != nil {
		return fmt.Errorf("main season: %w", err)
	}
	if err := s.OffSeason.Validate(); err != nil {
		return fmt.Errorf("off season: %w", err)
	}
	for name, table := range s.Holidays {
		if err := table.Validate(); err != nil {
			return fmt.Errorf("holiday %s: %w", name, err)
		}
	}
	return nil
}

// isMainSeason reports whether a check-in date falls in the main season:
// January through March or July through August.
func isMainSeason(date time.Time) bool {
	m := date.UTC().Month()
	return (m >= time.January && m <= time.March) || m == time.July || m == time.August
}

func isChristmas(date time.Time) bool {
	m, d := date.UTC().Month(), date.UTC().Day()
	return (m == time.December && d >= 24) || (m == time.January && d <= 2)
}

func isNewYear(date time.Time) bool {
	m, d := date.UTC().Month(), date.UTC().Day()
	return (m == time.December && d >= 28) || (m == time.January && d <= 3)
}

// isEaster approximates the Easter window as all of March and April.
// TODO: replace with a real movable-feast computation once the property
// owner confirms the intended window.
func isEaster(date time.Time) bool {
	m := date.UTC().Month()
	return m == time.March || m == time.April
}

var holidayMatchers = map[Holiday]func(time.Time) bool{
	HolidayChristmas: isChristmas,
	HolidayNewYear:   isNewYear,
	HolidayEaster:    isEaster,
}

// holidayFor scans every day of the stay (check-in through check-out,
// inclusive) against each holiday window in order and returns the first
// window any day falls into.
func holidayFor(checkIn, checkOut time.Time) (Holiday, bool) {
	in, out := calendar.Day(checkIn), calendar.Day(checkOut)
	for _, h := range holidayOrder {
		matches := holidayMatchers[h]
		for d := in; !d.After(out); d = d.AddDate(0, 0, 1) {
			if matches(d) {
				return h, true
			}
		}
	}
	return "", false
}

// TotalPrice computes the total stay price for the given dates.
//
// Simple rooms pay nights times the flat rate. Seasonal rooms first try the
// holiday table of any holiday window the stay touches (exact night-count
// entries only), then fall back to the check-in season's table, and finally
// to the flat rate when that table is empty.
func TotalPrice(model Model, pricePerNight int, seasonal *Seasonal, checkIn, checkOut time.Time) int {
	nights := calendar.Nights(checkIn, checkOut)

	if model != ModelSeasonal || seasonal == nil {
		return nights * pricePerNight
	}

	if holiday, ok := holidayFor(checkIn, checkOut); ok {
		if table, ok := seasonal.Holidays[holiday]; ok {
			if price, ok := table[nights]; ok {
				return price
			}
		}
	}

	table := seasonal.OffSeason
	if isMainSeason(calendar.Day(checkIn)) {
		table = seasonal.MainSeason
	}
	if price, ok := table.lookup(nights); ok {
		return price
	}

	return nights * pricePerNight
}

// MinimumStay returns the shortest bookable stay in nights: the smallest
// night key across the main and off season tables for seasonal rooms
// (holiday tables do not lower the floor), 1 for everything else.
func MinimumStay(model Model, seasonal *Seasonal) int {
	if model != ModelSeasonal || seasonal == nil {
		return 1
	}

	min := 0
	for _, table := range []Table{seasonal.MainSeason, seasonal.OffSeason} {
		for nights := range table {
			if min == 0 || nights < min {
				min = nights
			}
		}
	}
	if min == 0 {
		return 1
	}
	return min
}

// DepositAmount computes the upfront deposit for a stay, rounding half-up
// to a whole currency unit. The percentage is frozen onto the reservation
// at creation time.
func DepositAmount(totalPrice, percentage int) int {
	return (totalPrice*percentage + 50) / 100
}
