package reservation

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/penzionapp/guesthouse-booking-backend/internal/block"
	"github.com/penzionapp/guesthouse-booking-backend/internal/calendar"
	"github.com/penzionapp/guesthouse-booking-backend/internal/payment"
	"github.com/penzionapp/guesthouse-booking-backend/internal/pkg/apperror"
	"github.com/penzionapp/guesthouse-booking-backend/internal/pkg/keymutex"
	"github.com/penzionapp/guesthouse-booking-backend/internal/pricing"
	"github.com/penzionapp/guesthouse-booking-backend/internal/room"
	"github.com/penzionapp/guesthouse-booking-backend/internal/sequence"
	"github.com/penzionapp/guesthouse-booking-backend/internal/settings"
)

var ErrNoBankAccount = apperror.New(http.StatusBadRequest, "bank account is not configured")

type CreateRequest struct {
	RoomID         string
	CheckIn        time.Time
	CheckOut       time.Time
	GuestName      string
	GuestEmail     string
	GuestPhone     string
	NumberOfGuests int
	Note           string
}

// UpdateRequest carries optional admin edits; nil fields are left unchanged.
// Price, nights and the payment identifiers are never client-supplied.
type UpdateRequest struct {
	CheckIn        *time.Time
	CheckOut       *time.Time
	GuestName      *string
	GuestEmail     *string
	GuestPhone     *string
	NumberOfGuests *int
	Note           *string
	Status         *Status
}

// Notifier delivers guest notifications after a reservation is created.
// Implementations must not block the booking flow and must swallow their own
// failures.
type Notifier interface {
	ReservationCreated(r *Reservation)
}

// PasswordVerifier re-checks an admin password; destructive operations
// require it on top of a valid token.
type PasswordVerifier interface {
	VerifyPassword(ctx context.Context, adminID, password string) error
}

type Service interface {
	List(ctx context.Context) ([]*Reservation, error)
	GetByID(ctx context.Context, id string) (*Reservation, error)
	Create(ctx context.Context, req CreateRequest) (*Reservation, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Reservation, error)
	Cancel(ctx context.Context, id string, refundAmount *int, refundReason string) (*Reservation, error)
	MarkPaid(ctx context.Context, id string) (*Reservation, error)
	MarkDepositPaid(ctx context.Context, id string) (*Reservation, error)
	MarkFinalPaymentPaid(ctx context.Context, id string) (*Reservation, error)
	DeleteAll(ctx context.Context, adminID, password string) (int, error)
	Calendar(ctx context.Context, roomID string) ([]*Reservation, []*block.Block, error)
	PaymentQR(ctx context.Context, id string, deposit bool) (string, error)
}

type service struct {
	repo     Repository
	rooms    room.Repository
	blocks   block.Repository
	config   settings.Repository
	seq      *sequence.Generator
	admins   PasswordVerifier
	notifier Notifier
	locks    *keymutex.KeyMutex
}

// NewService wires the booking flow. locks must be shared with the block
// service so bookings and block creation for one room serialize against each
// other. notifier may be nil to disable guest notifications.
func NewService(
	repo Repository,
	rooms room.Repository,
	blocks block.Repository,
	config settings.Repository,
	seq *sequence.Generator,
	admins PasswordVerifier,
	notifier Notifier,
	locks *keymutex.KeyMutex,
) Service {
	return &service{
		repo:     repo,
		rooms:    rooms,
		blocks:   blocks,
		config:   config,
		seq:      seq,
		admins:   admins,
		notifier: notifier,
		locks:    locks,
	}
}

func (s *service) List(ctx context.Context) ([]*Reservation, error) {
	return s.repo.List(ctx)
}

func (s *service) GetByID(ctx context.Context, id string) (*Reservation, error) {
	return s.repo.GetByID(ctx, id)
}

// Create runs the public booking flow: snapshot the room's occupancy,
// validate the candidate, price the stay server-side, allocate the payment
// identifiers and persist, all inside the room's critical section so two
// concurrent bookings cannot both claim the same free slot.
func (s *service) Create(ctx context.Context, req CreateRequest) (*Reservation, error) {
	rm, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}

	s.locks.Lock(req.RoomID)
	defer s.locks.Unlock(req.RoomID)

	stays, err := s.repo.ListStays(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}
	blocked, err := s.listBlocked(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}

	candidate := Candidate{
		RoomID:         req.RoomID,
		CheckIn:        req.CheckIn,
		CheckOut:       req.CheckOut,
		GuestName:      req.GuestName,
		GuestEmail:     req.GuestEmail,
		GuestPhone:     req.GuestPhone,
		NumberOfGuests: req.NumberOfGuests,
	}
	if v := Validate(candidate, rm, stays, blocked, time.Now()); !v.Valid {
		return nil, &ValidationError{Reasons: v.Errors}
	}

	cfg, err := s.config.Get(ctx)
	if err != nil {
		return nil, err
	}

	year := time.Now().Year()
	variableSymbol, err := s.seq.Next(ctx, sequence.VariableSymbol, year)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate variable symbol: %w", err)
	}
	invoiceNumber, err := s.seq.Next(ctx, sequence.InvoiceNumber, year)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate invoice number: %w", err)
	}

	totalPrice := rm.StayPrice(req.CheckIn, req.CheckOut)
	res := &Reservation{
		RoomID:         rm.ID,
		RoomName:       rm.Name,
		CheckIn:        calendar.Day(req.CheckIn),
		CheckOut:       calendar.Day(req.CheckOut),
		Nights:         calendar.Nights(req.CheckIn, req.CheckOut),
		TotalPrice:     totalPrice,
		GuestName:      req.GuestName,
		GuestEmail:     req.GuestEmail,
		GuestPhone:     req.GuestPhone,
		NumberOfGuests: req.NumberOfGuests,
		Note:           req.Note,
		Status:         StatusPending,
		VariableSymbol: variableSymbol,
		InvoiceNumber:  invoiceNumber,
		DepositAmount:  pricing.DepositAmount(totalPrice, cfg.Guesthouse.DepositPercentage),
	}

	if res, err = s.repo.Create(ctx, res); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		go s.notifier.ReservationCreated(res)
	}
	return res, nil
}

// Update applies admin edits. A date change re-validates the collision check
// against everything except the reservation itself and reprices the stay.
func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Reservation, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.locks.Lock(res.RoomID)
	defer s.locks.Unlock(res.RoomID)

	checkIn, checkOut := res.CheckIn, res.CheckOut
	if req.CheckIn != nil {
		checkIn = calendar.Day(*req.CheckIn)
	}
	if req.CheckOut != nil {
		checkOut = calendar.Day(*req.CheckOut)
	}

	datesChanged := !checkIn.Equal(res.CheckIn) || !checkOut.Equal(res.CheckOut)
	if datesChanged {
		if !checkOut.After(checkIn) {
			return nil, &ValidationError{Reasons: []string{"check-out must be after check-in"}}
		}

		stays, err := s.repo.ListStays(ctx, res.RoomID)
		if err != nil {
			return nil, err
		}
		blocked, err := s.listBlocked(ctx, res.RoomID)
		if err != nil {
			return nil, err
		}

		slots := calendar.SlotsFor(checkIn, checkOut)
		if col, found := calendar.FindCollision(slots, excludeStay(stays, res.ID), blocked); found {
			return nil, &ValidationError{Reasons: []string{collisionMessage(col)}}
		}

		rm, err := s.rooms.GetByID(ctx, res.RoomID)
		if err != nil {
			return nil, err
		}
		res.CheckIn = checkIn
		res.CheckOut = checkOut
		res.Nights = calendar.Nights(checkIn, checkOut)
		res.TotalPrice = rm.StayPrice(checkIn, checkOut)
	}

	if req.GuestName != nil {
		res.GuestName = *req.GuestName
	}
	if req.GuestEmail != nil {
		res.GuestEmail = *req.GuestEmail
	}
	if req.GuestPhone != nil {
		res.GuestPhone = *req.GuestPhone
	}
	if req.NumberOfGuests != nil {
		res.NumberOfGuests = *req.NumberOfGuests
	}
	if req.Note != nil {
		res.Note = *req.Note
	}
	if req.Status != nil {
		res.Status = *req.Status
	}

	if err := s.repo.Update(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *service) Cancel(ctx context.Context, id string, refundAmount *int, refundReason string) (*Reservation, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	res.Cancel(refundAmount, refundReason)
	if err := s.repo.Update(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *service) MarkPaid(ctx context.Context, id string) (*Reservation, error) {
	return s.transition(ctx, id, (*Reservation).MarkPaid)
}

func (s *service) MarkDepositPaid(ctx context.Context, id string) (*Reservation, error) {
	return s.transition(ctx, id, (*Reservation).MarkDepositPaid)
}

func (s *service) MarkFinalPaymentPaid(ctx context.Context, id string) (*Reservation, error) {
	return s.transition(ctx, id, (*Reservation).MarkFinalPaymentPaid)
}

func (s *service) transition(ctx context.Context, id string, apply func(*Reservation) error) (*Reservation, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(res); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// DeleteAll wipes every reservation after re-verifying the caller's
// password. Counters are untouched, so identifiers are never reused.
func (s *service) DeleteAll(ctx context.Context, adminID, password string) (int, error) {
	if err := s.admins.VerifyPassword(ctx, adminID, password); err != nil {
		return 0, err
	}
	return s.repo.DeleteAll(ctx)
}

// Calendar returns the occupancy view of one room: every non-cancelled
// reservation plus every block.
func (s *service) Calendar(ctx context.Context, roomID string) ([]*Reservation, []*block.Block, error) {
	all, err := s.repo.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, nil, err
	}
	active := make([]*Reservation, 0, len(all))
	for _, res := range all {
		if res.Status != StatusCancelled {
			active = append(active, res)
		}
	}

	blocks, err := s.blocks.List(ctx, roomID)
	if err != nil {
		return nil, nil, err
	}
	return active, blocks, nil
}

// PaymentQR renders the SPD payment QR for either the deposit or the full
// amount as a data URL.
func (s *service) PaymentQR(ctx context.Context, id string, deposit bool) (string, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	cfg, err := s.config.Get(ctx)
	if err != nil {
		return "", err
	}
	if cfg.Guesthouse.BankAccount == "" {
		return "", ErrNoBankAccount
	}

	amount := res.TotalPrice
	message := fmt.Sprintf("Rezervace %s", res.ID)
	if deposit && res.DepositAmount > 0 {
		amount = res.DepositAmount
		message = fmt.Sprintf("Zaloha rezervace %s", res.ID)
	}
	return payment.QRCodeDataURL(cfg.Guesthouse.BankAccount, amount, res.VariableSymbol, message)
}

func (s *service) listBlocked(ctx context.Context, roomID string) ([]calendar.Blocked, error) {
	blocks, err := s.blocks.List(ctx, roomID)
	if err != nil {
		return nil, err
	}
	blocked := make([]calendar.Blocked, len(blocks))
	for i, b := range blocks {
		blocked[i] = calendar.Blocked{Date: b.Date, Half: b.HalfDay, Reason: b.Reason}
	}
	return blocked, nil
}
