package cli

import (
	"context"
	"log/slog"

	"nagoyameshi/internal/infra/db"
	"nagoyameshi/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}
	cmd.AddCommand(
		migrateStep("up", "Apply all pending migrations", db.Migrate),
		migrateStep("down", "Revert the latest migration", db.Rollback),
		migrateStep("status", "Show migration status", db.Status),
	)
	return cmd
}

func migrateStep(use, short string, run func(*pgxpool.Pool) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withPool(cmd.Context(), func(pool *pgxpool.Pool) error {
				if err := run(pool); err != nil {
					return err
				}
				slog.Info("マイグレーションが完了しました", "command", use)
				return nil
			})
		},
	}
}

func withPool(ctx context.Context, fn func(*pgxpool.Pool) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer cleanup()
	return fn(pool)
}
