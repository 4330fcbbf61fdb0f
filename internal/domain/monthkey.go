package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// monthNames are the canonical lowercase month names used in month keys.
var monthNames = [12]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// foldedMonths maps accent-free month names to their month number.
var foldedMonths = func() map[string]time.Month {
	m := make(map[string]time.Month, len(monthNames))
	for i, name := range monthNames {
		m[foldAccents(name)] = time.Month(i + 1)
	}
	return m
}()

// MonthKey identifies a calendar month. Its canonical text form is
// "<month name>_<YYYY>" (e.g. "octobre_2025"); "YYYY-MM" is accepted as an
// equivalent encoding.
type MonthKey struct {
	Year  int
	Month time.Month
}

// NewMonthKey returns the key for the given year and month.
func NewMonthKey(year int, month time.Month) MonthKey {
	return MonthKey{Year: year, Month: month}.normalize()
}

// MonthKeyOf returns the key of the month containing t, in t's location.
func MonthKeyOf(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

// ParseMonthKey parses either "octobre_2025" or "2025-10". Month names are
// matched case-insensitively and with or without accents.
func ParseMonthKey(raw string) (MonthKey, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return MonthKey{}, fmt.Errorf("month key: empty")
	}

	if name, year, ok := strings.Cut(s, "_"); ok {
		month, found := foldedMonths[foldAccents(strings.ToLower(name))]
		if !found {
			return MonthKey{}, fmt.Errorf("month key %q: unknown month name", raw)
		}
		y, err := parseYear(year)
		if err != nil {
			return MonthKey{}, fmt.Errorf("month key %q: %w", raw, err)
		}
		return MonthKey{Year: y, Month: month}, nil
	}

	if year, month, ok := strings.Cut(s, "-"); ok {
		y, err := parseYear(year)
		if err != nil {
			return MonthKey{}, fmt.Errorf("month key %q: %w", raw, err)
		}
		if len(month) != 2 {
			return MonthKey{}, fmt.Errorf("month key %q: month must have two digits", raw)
		}
		m, err := strconv.Atoi(month)
		if err != nil || m < 1 || m > 12 {
			return MonthKey{}, fmt.Errorf("month key %q: month out of range", raw)
		}
		return MonthKey{Year: y, Month: time.Month(m)}, nil
	}

	return MonthKey{}, fmt.Errorf("month key %q: unrecognized format", raw)
}

func parseYear(s string) (int, error) {
	if len(s) != 4 {
		return 0, fmt.Errorf("year must have four digits")
	}
	y, err := strconv.Atoi(s)
	if err != nil || y < 1000 {
		return 0, fmt.Errorf("invalid year %q", s)
	}
	return y, nil
}

// foldAccents strips combining marks so "août" and "aout" compare equal.
// Transformers are stateful, so a fresh chain is built on every call.
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// IsZero reports whether k is the zero key.
func (k MonthKey) IsZero() bool { return k.Year == 0 && k.Month == 0 }

// String returns the canonical name form, e.g. "octobre_2025".
func (k MonthKey) String() string {
	if k.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s_%04d", monthNames[k.Month-1], k.Year)
}

// Numeric returns the "YYYY-MM" form.
func (k MonthKey) Numeric() string {
	if k.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d", k.Year, int(k.Month))
}

// Label returns the display label, e.g. "Octobre 2025".
func (k MonthKey) Label() string {
	if k.IsZero() {
		return ""
	}
	caser := cases.Title(language.French)
	return caser.String(fmt.Sprintf("%s %04d", monthNames[k.Month-1], k.Year))
}

// Index is a monotonically increasing month number (year*12 + month-1).
func (k MonthKey) Index() int { return k.Year*12 + int(k.Month) - 1 }

// AddMonths returns the key n months after k (n may be negative).
func (k MonthKey) AddMonths(n int) MonthKey {
	return monthKeyFromIndex(k.Index() + n)
}

// Before reports whether k is strictly earlier than other.
func (k MonthKey) Before(other MonthKey) bool { return k.Index() < other.Index() }

// FirstDay returns midnight of the first day of the month in loc.
func (k MonthKey) FirstDay(loc *time.Location) time.Time {
	return time.Date(k.Year, k.Month, 1, 0, 0, 0, 0, loc)
}

// LastInstant returns 23:59:59 of the last day of the month in loc.
func (k MonthKey) LastInstant(loc *time.Location) time.Time {
	next := k.AddMonths(1).FirstDay(loc)
	return next.Add(-time.Second)
}

// MarshalText encodes the key in its canonical name form.
func (k MonthKey) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText accepts either encoding.
func (k *MonthKey) UnmarshalText(b []byte) error {
	parsed, err := ParseMonthKey(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func (k MonthKey) normalize() MonthKey {
	return monthKeyFromIndex(k.Index())
}

func monthKeyFromIndex(idx int) MonthKey {
	return MonthKey{Year: idx / 12, Month: time.Month(idx%12 + 1)}
}
