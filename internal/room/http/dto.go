package http

import (
	"time"

	"github.com/penzionapp/guesthouse-booking-backend/internal/pricing"
	"github.com/penzionapp/guesthouse-booking-backend/internal/room"
)

type CreateRoomBody struct {
	Name            string            `json:"name" binding:"required"`
	Capacity        int               `json:"capacity" binding:"required,min=1"`
	PricePerNight   int               `json:"pricePerNight" binding:"omitempty,min=0"`
	PricingModel    string            `json:"pricingModel" binding:"omitempty,oneof=simple seasonal"`
	SeasonalPricing *pricing.Seasonal `json:"seasonalPricing"`
	Description     string            `json:"description"`
	Available       *bool             `json:"available"`
}

type UpdateRoomBody struct {
	Name            *string           `json:"name"`
	Capacity        *int              `json:"capacity" binding:"omitempty,min=1"`
	PricePerNight   *int              `json:"pricePerNight" binding:"omitempty,min=0"`
	PricingModel    *string           `json:"pricingModel" binding:"omitempty,oneof=simple seasonal"`
	SeasonalPricing *pricing.Seasonal `json:"seasonalPricing"`
	Description     *string           `json:"description"`
	Available       *bool             `json:"available"`
}

type RoomResponse struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Capacity        int               `json:"capacity"`
	PricePerNight   int               `json:"pricePerNight"`
	PricingModel    string            `json:"pricingModel"`
	SeasonalPricing *pricing.Seasonal `json:"seasonalPricing,omitempty"`
	Description     string            `json:"description"`
	Available       bool              `json:"available"`
	MinimumStay     int               `json:"minimumStay"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

func NewRoomResponse(r *room.Room) RoomResponse {
	return RoomResponse{
		ID:              r.ID,
		Name:            r.Name,
		Capacity:        r.Capacity,
		PricePerNight:   r.PricePerNight,
		PricingModel:    string(r.PricingModel),
		SeasonalPricing: r.SeasonalPricing,
		Description:     r.Description,
		Available:       r.Available,
		MinimumStay:     r.MinimumStay(),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}
