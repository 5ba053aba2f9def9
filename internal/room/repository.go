package room

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines methods for accessing room data from storage.
type Repository interface {
	List(ctx context.Context) ([]*Room, error)
	GetByID(ctx context.Context, id string) (*Room, error)
	Create(ctx context.Context, r *Room) error
	Update(ctx context.Context, r *Room) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new Repository implementation using pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const roomColumns = "id, name, capacity, price_per_night, pricing_model, seasonal_pricing, description, available, created_at, updated_at"

func scanRoom(row pgx.Row) (*Room, error) {
	var r Room
	var seasonal []byte
	if err := row.Scan(
		&r.ID, &r.Name, &r.Capacity, &r.PricePerNight, &r.PricingModel,
		&seasonal, &r.Description, &r.Available, &r.CreatedAt, &r.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(seasonal) > 0 {
		if err := json.Unmarshal(seasonal, &r.SeasonalPricing); err != nil {
			return nil, fmt.Errorf("decode seasonal pricing: %w", err)
		}
		// Corrupted tables must fail loudly rather than mis-price stays.
		if err := r.SeasonalPricing.Validate(); err != nil {
			return nil, fmt.Errorf("room %s: %w", r.ID, err)
		}
	}
	return &r, nil
}

func (r *pgxRepository) List(ctx context.Context) ([]*Room, error) {
	query := fmt.Sprintf("SELECT %s FROM public.rooms ORDER BY created_at", roomColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list rooms failed: %w", err)
	}
	defer rows.Close()

	var rooms []*Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("scan room failed: %w", err)
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Room, error) {
	query := fmt.Sprintf("SELECT %s FROM public.rooms WHERE id = $1", roomColumns)

	room, err := scanRoom(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get room failed: %w", err)
	}
	return room, nil
}

func (r *pgxRepository) Create(ctx context.Context, room *Room) error {
	seasonal, err := marshalSeasonal(room)
	if err != nil {
		return err
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.rooms").
		Columns("name", "capacity", "price_per_night", "pricing_model", "seasonal_pricing", "description", "available").
		Values(room.Name, room.Capacity, room.PricePerNight, room.PricingModel, seasonal, room.Description, room.Available).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create room query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).
		Scan(&room.ID, &room.CreatedAt, &room.UpdatedAt)
}

func (r *pgxRepository) Update(ctx context.Context, room *Room) error {
	seasonal, err := marshalSeasonal(room)
	if err != nil {
		return err
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.rooms").
		Set("name", room.Name).
		Set("capacity", room.Capacity).
		Set("price_per_night", room.PricePerNight).
		Set("pricing_model", room.PricingModel).
		Set("seasonal_pricing", seasonal).
		Set("description", room.Description).
		Set("available", room.Available).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": room.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update room query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update room failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete room query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete room failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func marshalSeasonal(room *Room) ([]byte, error) {
	if room.SeasonalPricing == nil {
		return nil, nil
	}
	data, err := json.Marshal(room.SeasonalPricing)
	if err != nil {
		return nil, fmt.Errorf("encode seasonal pricing: %w", err)
	}
	return data, nil
}
