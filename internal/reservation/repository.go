package reservation

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/penzionapp/guesthouse-booking-backend/internal/calendar"
)

// Repository persists reservations. ListStays doubles as the stay source for
// block creation, so the block package never needs to import this one.
type Repository interface {
	List(ctx context.Context) ([]*Reservation, error)
	ListByRoom(ctx context.Context, roomID string) ([]*Reservation, error)
	ListStays(ctx context.Context, roomID string) ([]calendar.Stay, error)
	GetByID(ctx context.Context, id string) (*Reservation, error)
	Create(ctx context.Context, r *Reservation) (*Reservation, error)
	Update(ctx context.Context, r *Reservation) error
	DeleteAll(ctx context.Context) (int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var reservationColumns = []string{
	"id", "room_id", "room_name", "check_in", "check_out", "nights",
	"total_price", "guest_name", "guest_email", "guest_phone",
	"number_of_guests", "note", "status", "variable_symbol", "invoice_number",
	"deposit_amount", "deposit_paid", "final_payment_paid",
	"refund_amount", "refund_reason", "created_at", "updated_at",
}

func (r *pgxRepository) List(ctx context.Context) ([]*Reservation, error) {
	return r.list(ctx, nil)
}

func (r *pgxRepository) ListByRoom(ctx context.Context, roomID string) ([]*Reservation, error) {
	return r.list(ctx, sq.Eq{"room_id": roomID})
}

func (r *pgxRepository) list(ctx context.Context, cond sq.Eq) ([]*Reservation, error) {
	builder := r.sb.
		Select(reservationColumns...).
		From("reservations").
		OrderBy("created_at DESC")
	if cond != nil {
		builder = builder.Where(cond)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	defer rows.Close()

	var reservations []*Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

// ListStays loads the collision-relevant slice of a room's reservations.
func (r *pgxRepository) ListStays(ctx context.Context, roomID string) ([]calendar.Stay, error) {
	query, args, err := r.sb.
		Select("id", "check_in", "check_out", "status").
		From("reservations").
		Where(sq.Eq{"room_id": roomID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list stays: %w", err)
	}
	defer rows.Close()

	var stays []calendar.Stay
	for rows.Next() {
		var s calendar.Stay
		var status string
		if err := rows.Scan(&s.ID, &s.CheckIn, &s.CheckOut, &status); err != nil {
			return nil, fmt.Errorf("failed to scan stay: %w", err)
		}
		s.Cancelled = Status(status) == StatusCancelled
		stays = append(stays, s)
	}
	return stays, rows.Err()
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Reservation, error) {
	query, args, err := r.sb.
		Select(reservationColumns...).
		From("reservations").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	res, err := scanReservation(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *pgxRepository) Create(ctx context.Context, res *Reservation) (*Reservation, error) {
	query, args, err := r.sb.
		Insert("reservations").
		Columns(
			"room_id", "room_name", "check_in", "check_out", "nights",
			"total_price", "guest_name", "guest_email", "guest_phone",
			"number_of_guests", "note", "status", "variable_symbol",
			"invoice_number", "deposit_amount",
		).
		Values(
			res.RoomID, res.RoomName, res.CheckIn, res.CheckOut, res.Nights,
			res.TotalPrice, res.GuestName, res.GuestEmail, res.GuestPhone,
			res.NumberOfGuests, res.Note, string(res.Status), res.VariableSymbol,
			res.InvoiceNumber, res.DepositAmount,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}
	return res, nil
}

func (r *pgxRepository) Update(ctx context.Context, res *Reservation) error {
	query, args, err := r.sb.
		Update("reservations").
		SetMap(map[string]interface{}{
			"room_id":            res.RoomID,
			"room_name":          res.RoomName,
			"check_in":           res.CheckIn,
			"check_out":          res.CheckOut,
			"nights":             res.Nights,
			"total_price":        res.TotalPrice,
			"guest_name":         res.GuestName,
			"guest_email":        res.GuestEmail,
			"guest_phone":        res.GuestPhone,
			"number_of_guests":   res.NumberOfGuests,
			"note":               res.Note,
			"status":             string(res.Status),
			"deposit_paid":       res.DepositPaid,
			"final_payment_paid": res.FinalPaymentPaid,
			"refund_amount":      res.RefundAmount,
			"refund_reason":      res.RefundReason,
			"updated_at":         sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": res.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).Scan(&res.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update reservation: %w", err)
	}
	return nil
}

// DeleteAll wipes every reservation and reports how many were removed. The
// payment identifier counters are intentionally left untouched.
func (r *pgxRepository) DeleteAll(ctx context.Context) (int, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM reservations`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete reservations: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func scanReservation(row pgx.Row) (*Reservation, error) {
	var res Reservation
	var status string
	err := row.Scan(
		&res.ID, &res.RoomID, &res.RoomName, &res.CheckIn, &res.CheckOut,
		&res.Nights, &res.TotalPrice, &res.GuestName, &res.GuestEmail,
		&res.GuestPhone, &res.NumberOfGuests, &res.Note, &status,
		&res.VariableSymbol, &res.InvoiceNumber, &res.DepositAmount,
		&res.DepositPaid, &res.FinalPaymentPaid, &res.RefundAmount,
		&res.RefundReason, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan reservation: %w", err)
	}
	res.Status = Status(status)
	return &res, nil
}
