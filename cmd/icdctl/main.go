// Command icdctl is the operator CLI for the ICD code store. It shares the
// server's configuration and is meant to be run by hand or from cron.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/kruttikastudy/icd-website/internal/adapter/postgres"
	"github.com/kruttikastudy/icd-website/internal/app"
	"github.com/kruttikastudy/icd-website/internal/config"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "icdctl",
		Short:         "Operator tooling for the ICD code store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newMigrateCommand())
	cmd.AddCommand(newImportCommand())
	cmd.AddCommand(newPurgeSessionsCommand())
	return cmd
}

// env is what every subcommand needs: config, a logger and a pool.
type env struct {
	cfg    *config.Config
	log    *slog.Logger
	pool   *pgxpool.Pool
	closer io.Closer
}

func (e *env) Close() {
	if e.pool != nil {
		e.pool.Close()
	}
	if e.closer != nil {
		_ = e.closer.Close()
	}
}

func connect(ctx context.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, closer := app.NewLogger(cfg.Log)
	e := &env{cfg: cfg, log: logger, closer: closer}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		e.Close()
		return nil, err
	}
	e.pool = pool
	return e, nil
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
