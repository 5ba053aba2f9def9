package http

import (
	"time"

	"github.com/penzionapp/guesthouse-booking-backend/internal/calendar"
	"github.com/penzionapp/guesthouse-booking-backend/internal/reservation"
)

type CreateReservationBody struct {
	RoomID         string        `json:"roomId" binding:"required,uuid"`
	CheckIn        calendar.Date `json:"checkIn" binding:"required"`
	CheckOut       calendar.Date `json:"checkOut" binding:"required"`
	GuestName      string        `json:"guestName" binding:"required"`
	GuestEmail     string        `json:"guestEmail" binding:"required"`
	GuestPhone     string        `json:"guestPhone" binding:"required"`
	NumberOfGuests int           `json:"numberOfGuests" binding:"required"`
	Note           string        `json:"note"`
}

type UpdateReservationBody struct {
	CheckIn        *calendar.Date `json:"checkIn"`
	CheckOut       *calendar.Date `json:"checkOut"`
	GuestName      *string        `json:"guestName"`
	GuestEmail     *string        `json:"guestEmail"`
	GuestPhone     *string        `json:"guestPhone"`
	NumberOfGuests *int           `json:"numberOfGuests"`
	Note           *string        `json:"note"`
	Status         *string        `json:"status" binding:"omitempty,oneof=pending confirmed paid cancelled"`
}

type CancelReservationBody struct {
	RefundAmount *int   `json:"refundAmount"`
	RefundReason string `json:"refundReason"`
}

type DeleteAllBody struct {
	Password string `json:"password" binding:"required"`
}

type SendSMSBody struct {
	Message string `json:"message" binding:"required"`
}

type ReservationResponse struct {
	ID               string    `json:"id"`
	RoomID           string    `json:"roomId"`
	RoomName         string    `json:"roomName"`
	CheckIn          string    `json:"checkIn"`
	CheckOut         string    `json:"checkOut"`
	Nights           int       `json:"nights"`
	TotalPrice       int       `json:"totalPrice"`
	GuestName        string    `json:"guestName"`
	GuestEmail       string    `json:"guestEmail"`
	GuestPhone       string    `json:"guestPhone"`
	NumberOfGuests   int       `json:"numberOfGuests"`
	Note             string    `json:"note,omitempty"`
	Status           string    `json:"status"`
	VariableSymbol   string    `json:"variableSymbol"`
	InvoiceNumber    string    `json:"invoiceNumber"`
	DepositAmount    int       `json:"depositAmount"`
	DepositPaid      bool      `json:"depositPaid"`
	FinalPaymentPaid bool      `json:"finalPaymentPaid"`
	RefundAmount     *int      `json:"refundAmount,omitempty"`
	RefundReason     string    `json:"refundReason,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func NewReservationResponse(r *reservation.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:               r.ID,
		RoomID:           r.RoomID,
		RoomName:         r.RoomName,
		CheckIn:          r.CheckIn.Format(calendar.DateLayout),
		CheckOut:         r.CheckOut.Format(calendar.DateLayout),
		Nights:           r.Nights,
		TotalPrice:       r.TotalPrice,
		GuestName:        r.GuestName,
		GuestEmail:       r.GuestEmail,
		GuestPhone:       r.GuestPhone,
		NumberOfGuests:   r.NumberOfGuests,
		Note:             r.Note,
		Status:           string(r.Status),
		VariableSymbol:   r.VariableSymbol,
		InvoiceNumber:    r.InvoiceNumber,
		DepositAmount:    r.DepositAmount,
		DepositPaid:      r.DepositPaid,
		FinalPaymentPaid: r.FinalPaymentPaid,
		RefundAmount:     r.RefundAmount,
		RefundReason:     r.RefundReason,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}
