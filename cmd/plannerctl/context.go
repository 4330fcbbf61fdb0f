package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/contentplanner-backend/internal/adapter/postgres"
	"github.com/heartmarshall/contentplanner-backend/internal/app"
	"github.com/heartmarshall/contentplanner-backend/internal/config"
	"github.com/heartmarshall/contentplanner-backend/internal/service/schedule"
)

type commandContext struct {
	configFlag *string
	tzFlag     *string
	clock      clockwork.Clock

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, tzFlag *string, clock clockwork.Clock) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		tzFlag:     tzFlag,
		clock:      clock,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		path := os.Getenv("CONFIG_PATH")
		if c.configFlag != nil {
			if flag := strings.TrimSpace(*c.configFlag); flag != "" {
				path = flag
			}
		}
		c.config, c.configErr = config.LoadFile(path)
	})
	return c.config, c.configErr
}

// location resolves the planner timezone without touching the config file
// unless no --tz flag was given and configured is true.
func (c *commandContext) location(configured bool) *time.Location {
	if c.tzFlag != nil {
		if tz := strings.TrimSpace(*c.tzFlag); tz != "" {
			return schedule.ParseTimezone(tz)
		}
	}
	if configured {
		if cfg, err := c.ensureConfig(); err == nil && cfg.Planner.Location != nil {
			return cfg.Planner.Location
		}
	}
	return schedule.ParseTimezone(defaultTimezone)
}

func (c *commandContext) logger() *slog.Logger {
	cfg, err := c.ensureConfig()
	if err != nil {
		return slog.Default()
	}
	return app.NewLogger(cfg.Log)
}

func (c *commandContext) withPool(ctx context.Context, fn func(*pgxpool.Pool) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()
	return fn(pool)
}
