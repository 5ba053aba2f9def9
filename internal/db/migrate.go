package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema is the full database schema. Statements are idempotent so Migrate
// can be re-run safely on an existing database.
var schema = []string{
	`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

	`CREATE TABLE IF NOT EXISTS public.rooms (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		name text NOT NULL,
		capacity int NOT NULL,
		price_per_night int NOT NULL DEFAULT 0,
		pricing_model text NOT NULL DEFAULT 'simple',
		seasonal_pricing jsonb,
		description text NOT NULL DEFAULT '',
		available boolean NOT NULL DEFAULT true,
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS public.reservations (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		room_id uuid NOT NULL,
		room_name text NOT NULL,
		check_in date NOT NULL,
		check_out date NOT NULL,
		nights int NOT NULL,
		total_price int NOT NULL,
		guest_name text NOT NULL,
		guest_email text NOT NULL,
		guest_phone text NOT NULL,
		number_of_guests int NOT NULL,
		note text NOT NULL DEFAULT '',
		status text NOT NULL DEFAULT 'pending',
		variable_symbol text NOT NULL,
		invoice_number text NOT NULL,
		deposit_amount int NOT NULL DEFAULT 0,
		deposit_paid boolean NOT NULL DEFAULT false,
		final_payment_paid boolean NOT NULL DEFAULT false,
		refund_amount int,
		refund_reason text NOT NULL DEFAULT '',
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS reservations_room_id_idx ON public.reservations (room_id)`,

	`CREATE TABLE IF NOT EXISTS public.blocks (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		room_id uuid NOT NULL,
		date date NOT NULL,
		half_day text NOT NULL,
		reason text NOT NULL DEFAULT '',
		created_at timestamptz NOT NULL DEFAULT now(),
		UNIQUE (room_id, date, half_day)
	)`,

	`CREATE TABLE IF NOT EXISTS public.counters (
		name text NOT NULL,
		year int NOT NULL,
		value int NOT NULL DEFAULT 0,
		PRIMARY KEY (name, year)
	)`,

	`CREATE TABLE IF NOT EXISTS public.admins (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		username text NOT NULL UNIQUE,
		password_hash text NOT NULL,
		email text NOT NULL DEFAULT '',
		created_at timestamptz NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS public.settings (
		id int PRIMARY KEY DEFAULT 1 CHECK (id = 1),
		guesthouse jsonb NOT NULL DEFAULT '{}',
		email jsonb NOT NULL DEFAULT '{}',
		sms jsonb NOT NULL DEFAULT '{}',
		updated_at timestamptz NOT NULL DEFAULT now()
	)`,
}

// Migrate applies the schema to the connected database.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
