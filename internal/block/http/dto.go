package http

import (
	"time"

	"github.com/penzionapp/guesthouse-booking-backend/internal/block"
	"github.com/penzionapp/guesthouse-booking-backend/internal/calendar"
)

type CreateBlockBody struct {
	RoomID  string        `json:"roomId" binding:"required,uuid"`
	Date    calendar.Date `json:"date" binding:"required"`
	HalfDay string        `json:"halfDay" binding:"required,oneof=AM PM"`
	Reason  string        `json:"reason"`
}

type BlockResponse struct {
	ID        string    `json:"id"`
	RoomID    string    `json:"roomId"`
	Date      string    `json:"date"`
	HalfDay   string    `json:"halfDay"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewBlockResponse(b *block.Block) BlockResponse {
	return BlockResponse{
		ID:        b.ID,
		RoomID:    b.RoomID,
		Date:      b.Date.Format(calendar.DateLayout),
		HalfDay:   string(b.HalfDay),
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt,
	}
}
