package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Get(ctx context.Context) (Settings, error)
	Save(ctx context.Context, s Settings) error
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

// Get loads the single settings row. When none has been saved yet it returns
// the defaults instead of an error.
func (r *pgxRepository) Get(ctx context.Context) (Settings, error) {
	query, args, err := r.sb.
		Select("guesthouse", "email", "sms").
		From("settings").
		Where(sq.Eq{"id": 1}).
		ToSql()
	if err != nil {
		return Settings{}, fmt.Errorf("failed to build query: %w", err)
	}

	var guesthouse, email, sms []byte
	err = r.pool.QueryRow(ctx, query, args...).Scan(&guesthouse, &email, &sms)
	if errors.Is(err, pgx.ErrNoRows) {
		return Defaults(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}

	s := Defaults()
	if err := json.Unmarshal(guesthouse, &s.Guesthouse); err != nil {
		return Settings{}, fmt.Errorf("corrupt guesthouse settings: %w", err)
	}
	if err := json.Unmarshal(email, &s.Email); err != nil {
		return Settings{}, fmt.Errorf("corrupt email settings: %w", err)
	}
	if err := json.Unmarshal(sms, &s.SMS); err != nil {
		return Settings{}, fmt.Errorf("corrupt sms settings: %w", err)
	}
	return s, nil
}

// Save upserts the single settings row.
func (r *pgxRepository) Save(ctx context.Context, s Settings) error {
	guesthouse, err := json.Marshal(s.Guesthouse)
	if err != nil {
		return fmt.Errorf("failed to encode guesthouse settings: %w", err)
	}
	email, err := json.Marshal(s.Email)
	if err != nil {
		return fmt.Errorf("failed to encode email settings: %w", err)
	}
	sms, err := json.Marshal(s.SMS)
	if err != nil {
		return fmt.Errorf("failed to encode sms settings: %w", err)
	}

	const q = `
		INSERT INTO settings (id, guesthouse, email, sms, updated_at)
		VALUES (1, $1, $2, $3, now())
		ON CONFLICT (id)
		DO UPDATE SET guesthouse = $1, email = $2, sms = $3, updated_at = now()`

	if _, err := r.pool.Exec(ctx, q, guesthouse, email, sms); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
