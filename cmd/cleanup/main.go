// Command cleanup deletes month-specific notes whose target month is over.
// It is intended for deployments that disable the in-process scheduler and
// drive maintenance from an external cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/contentplanner-backend/internal/adapter/postgres"
	"github.com/heartmarshall/contentplanner-backend/internal/adapter/postgres/note"
	"github.com/heartmarshall/contentplanner-backend/internal/app"
	"github.com/heartmarshall/contentplanner-backend/internal/config"
	"github.com/heartmarshall/contentplanner-backend/internal/service/notes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := notes.NewService(logger, note.New(pool), postgres.NewTxManager(pool), clockwork.NewRealClock(), cfg.Planner.Location)

	deleted, err := svc.PurgeElapsed(ctx)
	if err != nil {
		logger.Error("purge elapsed notes failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("purge elapsed notes completed",
		slog.Int("deleted", deleted),
		slog.String("timezone", cfg.Planner.Location.String()),
	)
}
