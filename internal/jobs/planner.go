package jobs

import (
	"context"
	"log/slog"
	"time"
)

// Job names.
const (
	PurgeElapsedNotes = "purge-elapsed-notes"
	EvictSessions     = "evict-modification-sessions"
)

type notePurger interface {
	PurgeElapsed(ctx context.Context) (int, error)
}

type sessionEvicter interface {
	EvictIdle(ttl time.Duration) int
	Len() int
}

type sessionGauge interface {
	Set(v float64)
}

// PurgeNotesJob deletes month-specific notes whose month has passed.
func PurgeNotesJob(log *slog.Logger, spec string, notes notePurger) Job {
	return Job{
		Name: PurgeElapsedNotes,
		Spec: spec,
		Run: func(ctx context.Context) error {
			n, err := notes.PurgeElapsed(ctx)
			if err != nil {
				return err
			}
			log.InfoContext(ctx, "elapsed notes purged", slog.Int("deleted", n))
			return nil
		},
	}
}

// EvictSessionsJob drops idle modification sessions. gauge may be nil.
func EvictSessionsJob(log *slog.Logger, spec string, ttl time.Duration, sessions sessionEvicter, gauge sessionGauge) Job {
	return Job{
		Name:    EvictSessions,
		Spec:    spec,
		Timeout: time.Minute,
		Run: func(ctx context.Context) error {
			if n := sessions.EvictIdle(ttl); n > 0 {
				log.InfoContext(ctx, "idle sessions evicted", slog.Int("evicted", n))
			}
			if gauge != nil {
				gauge.Set(float64(sessions.Len()))
			}
			return nil
		},
	}
}
