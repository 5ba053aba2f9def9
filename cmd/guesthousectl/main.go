// guesthousectl is the operator CLI: schema migration and admin-account
// management for the guesthouse booking backend.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/penzionapp/guesthouse-booking-backend/internal/admin"
	"github.com/penzionapp/guesthouse-booking-backend/internal/auth"
	"github.com/penzionapp/guesthouse-booking-backend/internal/db"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "guesthousectl",
		Short: "Guesthouse booking backend management tool",
	}

	rootCmd.AddCommand(
		migrateCmd(),
		createAdminCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func connect(ctx context.Context) (*pgxpool.Pool, error) {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		return nil, fmt.Errorf("DB_DSN is required")
	}
	return db.NewPool(ctx, dsn)
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pool, err := connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := db.Migrate(ctx, pool); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			fmt.Println("schema applied")
			return nil
		},
	}
}

func createAdminCmd() *cobra.Command {
	var username, password, email string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" || password == "" {
				return fmt.Errorf("--username and --password are required")
			}

			ctx := cmd.Context()
			pool, err := connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			// Token issuing is not needed here; any secret satisfies the
			// service constructor.
			service := admin.NewService(
				admin.NewPgxRepository(pool),
				auth.NewBcryptPasswordHasher(),
				auth.NewJWTManager("unused", 0),
			)

			a, err := service.Register(ctx, username, password, email)
			if err != nil {
				return fmt.Errorf("failed to create admin: %w", err)
			}
			fmt.Printf("admin %q created (id %s)\n", a.Username, a.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "admin username")
	cmd.Flags().StringVar(&password, "password", "", "admin password")
	cmd.Flags().StringVar(&email, "email", "", "admin contact email")

	return cmd
}
