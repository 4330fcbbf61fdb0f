package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/contentplanner-backend/internal/adapter/assistant"
	"github.com/heartmarshall/contentplanner-backend/internal/adapter/postgres"
	"github.com/heartmarshall/contentplanner-backend/internal/adapter/postgres/content"
	"github.com/heartmarshall/contentplanner-backend/internal/adapter/postgres/note"
	"github.com/heartmarshall/contentplanner-backend/internal/adapter/postgres/post"
	"github.com/heartmarshall/contentplanner-backend/internal/auth"
	"github.com/heartmarshall/contentplanner-backend/internal/config"
	"github.com/heartmarshall/contentplanner-backend/internal/jobs"
	"github.com/heartmarshall/contentplanner-backend/internal/metrics"
	"github.com/heartmarshall/contentplanner-backend/internal/service/calendar"
	"github.com/heartmarshall/contentplanner-backend/internal/service/modification"
	"github.com/heartmarshall/contentplanner-backend/internal/service/notes"
	"github.com/heartmarshall/contentplanner-backend/internal/service/schedule"
	"github.com/heartmarshall/contentplanner-backend/internal/service/timeline"
	"github.com/heartmarshall/contentplanner-backend/internal/transport/middleware"
	"github.com/heartmarshall/contentplanner-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and serves HTTP until ctx is cancelled.
// Cron jobs run alongside the server when enabled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("timezone", cfg.Planner.Location.String()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	clock := clockwork.NewRealClock()
	reg := metrics.NewRegistry()
	svc := newServices(logger, cfg, postgres.NewTxManager(pool), repos{
		content: content.New(pool, clock),
		notes:   note.New(pool),
		posts:   post.New(pool, clock),
	}, reg, clock)

	router := rest.NewRouter(rest.Handlers{
		Health:       rest.NewHealthHandler(pool, svc.assistant, Version, clock),
		Library:      rest.NewLibraryHandler(svc.library, logger),
		Notes:        rest.NewNotesHandler(svc.notes, logger),
		Posts:        rest.NewPostsHandler(svc.schedule, logger),
		Calendar:     rest.NewCalendarHandler(svc.calendar, logger),
		Modification: rest.NewModificationHandler(svc.modification, logger),
		Metrics:      reg.Handler(),
	}, middleware.Auth(svc.tokens))

	var limit middleware.Middleware
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
		limit = limiter.Limit()
	}
	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Metrics(reg, router),
		middleware.CORS(cfg.CORS),
		limit,
	)(router)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	var scheduler *jobs.Scheduler
	if cfg.Jobs.Enabled {
		if scheduler, err = newScheduler(logger, cfg, svc, reg); err != nil {
			return err
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})

	if scheduler != nil {
		g.Go(func() error { return scheduler.Run(gctx) })
	}

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}

type repos struct {
	content *content.Repo
	notes   *note.Repo
	posts   *post.Repo
}

type services struct {
	library      *timeline.Service
	notes        *notes.Service
	schedule     *schedule.Service
	calendar     *calendar.Service
	modification *modification.Service
	assistant    *assistant.Client
	tokens       *auth.TokenManager
}

func newServices(
	logger *slog.Logger,
	cfg *config.Config,
	tx *postgres.TxManager,
	r repos,
	reg *metrics.Registry,
	clock clockwork.Clock,
) services {
	loc := cfg.Planner.Location

	asst := assistant.NewClient(logger, assistant.Options{
		BaseURL:     cfg.Assistant.BaseURL,
		APIKey:      cfg.Assistant.APIKey,
		Timeout:     cfg.Assistant.Timeout,
		MaxFailures: cfg.Assistant.BreakerMaxFailures,
		OpenTimeout: cfg.Assistant.BreakerOpenTimeout,
		UserAgent:   UserAgent(),
		Metrics:     reg,
	})

	recordTransition := func(t modification.Transition) {
		reg.RecordTransition(t.From.String(), t.To.String())
	}

	return services{
		library:   timeline.NewService(logger, r.content, clock, loc, cfg.Planner.MaxBatchDelete),
		notes:     notes.NewService(logger, r.notes, tx, clock, loc),
		schedule:  schedule.NewService(logger, r.posts, asst, clock, loc, cfg.Planner.ScheduleMinLead),
		calendar:  calendar.NewService(logger, r.posts, clock, loc),
		assistant: asst,
		tokens:    auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL, clock),
		modification: modification.NewService(
			logger, r.posts, asst, r.posts, clock, loc, cfg.Planner.ScheduleMinLead, recordTransition,
		),
	}
}

func newScheduler(logger *slog.Logger, cfg *config.Config, svc services, reg *metrics.Registry) (*jobs.Scheduler, error) {
	s := jobs.NewScheduler(logger, cfg.Planner.Location, reg)
	for _, job := range []jobs.Job{
		jobs.PurgeNotesJob(logger, cfg.Jobs.PurgeNotesSpec, svc.notes),
		jobs.EvictSessionsJob(logger, cfg.Jobs.EvictSessionsSpec, cfg.Planner.SessionIdleTTL, svc.modification, reg.OpenSessions),
	} {
		if err := s.Add(job); err != nil {
			return nil, fmt.Errorf("register job: %w", err)
		}
	}
	return s, nil
}
