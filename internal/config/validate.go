package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/robfig/cron/v3"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Planner.validate(); err != nil {
		return fmt.Errorf("planner: %w", err)
	}
	if err := c.Assistant.validate(); err != nil {
		return fmt.Errorf("assistant: %w", err)
	}
	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}
	if err := c.Jobs.validate(); err != nil {
		return fmt.Errorf("jobs: %w", err)
	}

	return nil
}

func (p *PlannerConfig) validate() error {
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", p.Timezone, err)
	}
	p.Location = loc

	if p.ScheduleMinLead <= 0 {
		return fmt.Errorf("schedule_min_lead must be > 0 (got %v)", p.ScheduleMinLead)
	}
	if p.MaxBatchDelete <= 0 {
		return fmt.Errorf("max_batch_delete must be > 0 (got %d)", p.MaxBatchDelete)
	}
	if p.SessionIdleTTL <= 0 {
		return fmt.Errorf("session_idle_ttl must be > 0 (got %v)", p.SessionIdleTTL)
	}
	return nil
}

func (a *AssistantConfig) validate() error {
	u, err := url.Parse(a.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url %q must be an absolute URL", a.BaseURL)
	}
	if a.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", a.Timeout)
	}
	if a.BreakerMaxFailures == 0 {
		return fmt.Errorf("breaker_max_failures must be > 0")
	}
	return nil
}

func (r *RateLimitConfig) validate() error {
	if !r.Enabled {
		return nil
	}
	if r.RequestsPerMinute <= 0 {
		return fmt.Errorf("requests_per_minute must be > 0 (got %d)", r.RequestsPerMinute)
	}
	if r.Burst <= 0 {
		return fmt.Errorf("burst must be > 0 (got %d)", r.Burst)
	}
	return nil
}

func (j *JobsConfig) validate() error {
	if !j.Enabled {
		return nil
	}
	for name, spec := range map[string]string{
		"purge_notes_spec":    j.PurgeNotesSpec,
		"evict_sessions_spec": j.EvictSessionsSpec,
	} {
		if _, err := cron.ParseStandard(spec); err != nil {
			return fmt.Errorf("%s %q: %w", name, spec, err)
		}
	}
	return nil
}
