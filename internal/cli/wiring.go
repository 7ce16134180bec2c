package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"calbook/internal/booking"
	"calbook/internal/clock"
	"calbook/internal/config"
	"calbook/internal/store/postgres"
)

// runWithEngine wires config, database and booking engine for a single
// command invocation, runs fn and prints the result line to stdout.
func runWithEngine(cmd *cobra.Command, fn func(ctx context.Context, eng *booking.Engine) booking.Result) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	db, err := postgres.Open(cfg.DatabaseURL, postgres.PoolConfig{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
		ConnMaxIdleTime: cfg.DBConnMaxIdleTime,
	})
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer func() {
		if err := postgres.Close(db); err != nil {
			slog.Warn("database close failed", slog.Any("err", err))
		}
	}()

	if err := postgres.Migrate(ctx, db); err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}

	clk := clock.System{}
	repo := postgres.NewAppointmentRepo(db, clk)
	eng := booking.NewEngine(repo, booking.TimeSlotValidator{}, clk, slog.Default())

	res := fn(ctx, eng)
	fmt.Fprintln(cmd.OutOrStdout(), res.Message)
	return nil
}
