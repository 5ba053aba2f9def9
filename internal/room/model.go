package room

import (
	"net/http"
	"time"

	"github.com/penzionapp/guesthouse-booking-backend/internal/pkg/apperror"
	"github.com/penzionapp/guesthouse-booking-backend/internal/pricing"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "room not found")
	ErrNameRequired    = apperror.New(http.StatusBadRequest, "room name is required")
	ErrInvalidCapacity = apperror.New(http.StatusBadRequest, "capacity must be at least 1")
	ErrInvalidModel    = apperror.New(http.StatusBadRequest, "pricing model must be simple or seasonal")
)

// Room is a bookable unit: a single room or the whole guesthouse.
type Room struct {
	ID   string
	Name string

	// Capacity is the maximum number of guests. It gates bookings but has
	// no effect on pricing.
	Capacity int

	// PricePerNight is the flat nightly rate for simple rooms and the
	// last-resort fallback for seasonal rooms with empty tables.
	PricePerNight int

	PricingModel    pricing.Model
	SeasonalPricing *pricing.Seasonal

	Description string

	// Available gates new bookings; an unavailable room keeps its existing
	// reservations.
	Available bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MinimumStay returns the shortest bookable stay for this room in nights.
func (r *Room) MinimumStay() int {
	return pricing.MinimumStay(r.PricingModel, r.SeasonalPricing)
}

// StayPrice computes the total price for a stay in this room.
func (r *Room) StayPrice(checkIn, checkOut time.Time) int {
	return pricing.TotalPrice(r.PricingModel, r.PricePerNight, r.SeasonalPricing, checkIn, checkOut)
}
