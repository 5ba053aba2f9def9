package reservation

import (
	"net/http"
	"strings"
	"time"

	"github.com/penzionapp/guesthouse-booking-backend/internal/calendar"
	"github.com/penzionapp/guesthouse-booking-backend/internal/pkg/apperror"
)

// Status is the lifecycle state of a reservation.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
)

var (
	ErrNotFound  = apperror.New(http.StatusNotFound, "reservation not found")
	ErrCancelled = apperror.New(http.StatusConflict, "reservation is cancelled")
)

// Reservation is a guest booking. Guest-supplied fields are validated by
// Validate before anything downstream trusts them; price, payment identifiers
// and the deposit are always computed server-side at creation and never
// reassigned.
type Reservation struct {
	ID       string
	RoomID   string
	RoomName string

	CheckIn  time.Time
	CheckOut time.Time
	Nights   int

	TotalPrice int

	GuestName      string
	GuestEmail     string
	GuestPhone     string
	NumberOfGuests int
	Note           string

	Status Status

	VariableSymbol string
	InvoiceNumber  string

	// DepositAmount is frozen at creation from the property-wide deposit
	// percentage; later settings changes do not touch it.
	DepositAmount    int
	DepositPaid      bool
	FinalPaymentPaid bool

	// Refund bookkeeping, set only on cancellation.
	RefundAmount *int
	RefundReason string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Stay returns the occupancy-relevant view used by collision checks.
func (r *Reservation) Stay() calendar.Stay {
	return calendar.Stay{
		ID:        r.ID,
		CheckIn:   r.CheckIn,
		CheckOut:  r.CheckOut,
		Cancelled: r.Status == StatusCancelled,
	}
}

// ValidationError carries the accumulated rejection reasons of a candidate
// booking. It maps to a 400 with the full list, not a single message.
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return "reservation rejected: " + strings.Join(e.Reasons, "; ")
}
