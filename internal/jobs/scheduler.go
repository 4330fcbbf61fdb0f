// Package jobs runs periodic maintenance on a cron schedule.
package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultTimeout bounds a single job run when the job sets none.
const DefaultTimeout = 5 * time.Minute

// Job is a named unit of periodic work.
type Job struct {
	Name    string
	Spec    string
	Timeout time.Duration
	Run     func(ctx context.Context) error
}

type recorder interface {
	RecordJob(job string, err error)
}

// Scheduler wraps a cron runner in the planner timezone. Runs of the same
// job never overlap.
type Scheduler struct {
	log     *slog.Logger
	loc     *time.Location
	parser  cron.Parser
	metrics recorder

	mu   sync.Mutex
	jobs map[string]Job
	c    *cron.Cron
}

// NewScheduler creates a scheduler. metrics may be nil.
func NewScheduler(log *slog.Logger, loc *time.Location, metrics recorder) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{
		log:     log.With("component", "jobs"),
		loc:     loc,
		parser:  cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor),
		metrics: metrics,
		jobs:    make(map[string]Job),
	}
}

// Add registers a job. The spec is checked immediately.
func (s *Scheduler) Add(job Job) error {
	if job.Name == "" || job.Run == nil {
		return errors.New("jobs: name and run are required")
	}
	if _, err := s.parser.Parse(job.Spec); err != nil {
		return fmt.Errorf("jobs: %s: parse spec %q: %w", job.Name, job.Spec, err)
	}
	if job.Timeout <= 0 {
		job.Timeout = DefaultTimeout
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.jobs[job.Name]; dup {
		return fmt.Errorf("jobs: %s already registered", job.Name)
	}
	s.jobs[job.Name] = job
	return nil
}

// Run starts the cron runner and blocks until ctx is done, then waits for
// running jobs to finish.
func (s *Scheduler) Run(ctx context.Context) error {
	s.mu.Lock()
	if s.c != nil {
		s.mu.Unlock()
		return errors.New("jobs: scheduler already running")
	}
	c := cron.New(
		cron.WithParser(s.parser),
		cron.WithLocation(s.loc),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
	for _, job := range s.jobs {
		if _, err := c.AddFunc(job.Spec, func() { _ = s.execute(ctx, job) }); err != nil {
			s.mu.Unlock()
			return fmt.Errorf("jobs: %s: %w", job.Name, err)
		}
	}
	s.c = c
	n := len(s.jobs)
	s.mu.Unlock()

	c.Start()
	s.log.Info("scheduler started", slog.Int("jobs", n), slog.String("tz", s.loc.String()))

	<-ctx.Done()

	<-c.Stop().Done()
	s.mu.Lock()
	s.c = nil
	s.mu.Unlock()
	s.log.Info("scheduler stopped")
	return nil
}

// RunNow executes a registered job once, outside its schedule.
func (s *Scheduler) RunNow(ctx context.Context, name string) error {
	s.mu.Lock()
	job, ok := s.jobs[name]
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("jobs: unknown job %q", name)
	}
	return s.execute(ctx, job)
}

// Next reports when a registered job fires next after t.
func (s *Scheduler) Next(name string, t time.Time) (time.Time, error) {
	s.mu.Lock()
	job, ok := s.jobs[name]
	s.mu.Unlock()
	if !ok {
		return time.Time{}, fmt.Errorf("jobs: unknown job %q", name)
	}
	sched, err := s.parser.Parse(job.Spec)
	if err != nil {
		return time.Time{}, err
	}
	return sched.Next(t.In(s.loc)), nil
}

func (s *Scheduler) execute(parent context.Context, job Job) (err error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), job.Timeout)
	defer cancel()

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("jobs: %s panicked: %v", job.Name, r)
		}
		if s.metrics != nil {
			s.metrics.RecordJob(job.Name, err)
		}
		if err != nil {
			s.log.ErrorContext(ctx, "job failed",
				slog.String("job", job.Name),
				slog.Duration("duration", time.Since(start)),
				slog.String("error", err.Error()),
			)
			return
		}
		s.log.InfoContext(ctx, "job finished",
			slog.String("job", job.Name),
			slog.Duration("duration", time.Since(start)),
		)
	}()

	return job.Run(ctx)
}
