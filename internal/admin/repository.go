package admin

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	GetByUsername(ctx context.Context, username string) (*Admin, error)
	GetByID(ctx context.Context, id string) (*Admin, error)
	Create(ctx context.Context, a *Admin) (*Admin, error)
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

func (r *pgxRepository) GetByUsername(ctx context.Context, username string) (*Admin, error) {
	return r.getBy(ctx, sq.Eq{"username": username})
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Admin, error) {
	return r.getBy(ctx, sq.Eq{"id": id})
}

func (r *pgxRepository) getBy(ctx context.Context, cond sq.Eq) (*Admin, error) {
	query, args, err := r.sb.
		Select("id", "username", "password_hash", "email", "created_at").
		From("admins").
		Where(cond).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var a Admin
	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&a.ID, &a.Username, &a.PasswordHash, &a.Email, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load admin: %w", err)
	}
	return &a, nil
}

func (r *pgxRepository) Create(ctx context.Context, a *Admin) (*Admin, error) {
	query, args, err := r.sb.
		Insert("admins").
		Columns("username", "password_hash", "email").
		Values(a.Username, a.PasswordHash, a.Email).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	return a, nil
}
