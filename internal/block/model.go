package block

import (
	"net/http"
	"time"

	"github.com/penzionapp/guesthouse-booking-backend/internal/calendar"
	"github.com/penzionapp/guesthouse-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound      = apperror.New(http.StatusNotFound, "block not found")
	ErrPastDate      = apperror.New(http.StatusBadRequest, "cannot block a past date")
	ErrInvalidHalf   = apperror.New(http.StatusBadRequest, "half day must be AM or PM")
	ErrAlreadyExists = apperror.New(http.StatusConflict, "slot is already blocked")
	ErrSlotReserved  = apperror.New(http.StatusConflict, "slot is claimed by a reservation")
)

// Block is an administratively closed half-day slot, independent of any
// reservation. Blocks never expire on their own.
type Block struct {
	ID        string
	RoomID    string
	Date      time.Time
	HalfDay   calendar.HalfDay
	Reason    string
	CreatedAt time.Time
}
