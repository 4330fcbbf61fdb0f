package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/contentplanner-backend/internal/domain"
)

func parseUser(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid --user %q: %w", raw, err)
	}
	return id, nil
}

// monthOrCurrent parses raw in either month encoding; empty means the month
// containing now.
func monthOrCurrent(raw string, now time.Time) (domain.MonthKey, error) {
	if strings.TrimSpace(raw) == "" {
		return domain.MonthKeyOf(now), nil
	}
	key, err := domain.ParseMonthKey(raw)
	if err != nil {
		return domain.MonthKey{}, fmt.Errorf("invalid --month %q: %w", raw, err)
	}
	return key, nil
}

func formatInstant(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02 15:04:05 MST")
}
