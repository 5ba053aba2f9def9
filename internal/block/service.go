package block

import (
	"context"
	"time"

	"github.com/penzionapp/guesthouse-booking-backend/internal/calendar"
	"github.com/penzionapp/guesthouse-booking-backend/internal/pkg/keymutex"
)

type CreateRequest struct {
	RoomID  string
	Date    time.Time
	HalfDay calendar.HalfDay
	Reason  string
}

// StaySource lists the stays of a room for collision checks. It is satisfied
// by the reservation repository; the indirection keeps this package free of a
// dependency on the reservation package.
type StaySource interface {
	ListStays(ctx context.Context, roomID string) ([]calendar.Stay, error)
}

type Service interface {
	List(ctx context.Context, roomID string) ([]*Block, error)
	Create(ctx context.Context, req CreateRequest) (*Block, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo  Repository
	stays StaySource
	locks *keymutex.KeyMutex
}

// NewService creates a block Service. locks must be the same keyed mutex the
// reservation service uses, so block creation and booking for one room cannot
// interleave.
func NewService(repo Repository, stays StaySource, locks *keymutex.KeyMutex) Service {
	return &service{repo: repo, stays: stays, locks: locks}
}

func (s *service) List(ctx context.Context, roomID string) ([]*Block, error) {
	return s.repo.List(ctx, roomID)
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Block, error) {
	if req.HalfDay != calendar.AM && req.HalfDay != calendar.PM {
		return nil, ErrInvalidHalf
	}
	if calendar.IsPast(req.Date, time.Now()) {
		return nil, ErrPastDate
	}

	s.locks.Lock(req.RoomID)
	defer s.locks.Unlock(req.RoomID)

	// A slot claimed by a non-cancelled reservation cannot also be blocked.
	stays, err := s.stays.ListStays(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}
	slot := []calendar.Slot{{Date: calendar.Day(req.Date), Half: req.HalfDay}}
	if _, collides := calendar.FindCollision(slot, stays, nil); collides {
		return nil, ErrSlotReserved
	}

	b := &Block{
		RoomID:  req.RoomID,
		Date:    calendar.Day(req.Date),
		HalfDay: req.HalfDay,
		Reason:  req.Reason,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
