package domain

import (
	"fmt"
	"strings"
	"time"

	apperrors "swipescoop/internal/platform/errors"
)

const dayLayout = "2006-01-02"

// DayKey identifies a calendar day as YYYY-MM-DD. Lexicographic order equals
// chronological order. The zero value means "no day".
type DayKey string

// DayKeyOf returns the calendar day of t in t's own location.
func DayKeyOf(t time.Time) DayKey {
	return DayKey(t.Format(dayLayout))
}

func ParseDayKey(raw string) (DayKey, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	t, err := time.Parse(dayLayout, raw)
	if err != nil {
		return "", fmt.Errorf("%w: day %q", apperrors.ErrInvalidInput, raw)
	}
	return DayKeyOf(t), nil
}

func (d DayKey) IsZero() bool   { return d == "" }
func (d DayKey) String() string { return string(d) }

func (d DayKey) Valid() bool {
	_, ok := d.date()
	return ok
}

func (d DayKey) date() (time.Time, bool) {
	t, err := time.Parse(dayLayout, string(d))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// AddDays returns the day n days away. Invalid keys yield the zero DayKey.
func (d DayKey) AddDays(n int) DayKey {
	t, ok := d.date()
	if !ok {
		return ""
	}
	return DayKeyOf(t.AddDate(0, 0, n))
}

func (d DayKey) Next() DayKey { return d.AddDays(1) }

// Before reports whether d is strictly earlier than other. Both must be valid.
func (d DayKey) Before(other DayKey) bool {
	return d.Valid() && other.Valid() && d < other
}

// IsNextAfter reports whether d is exactly the calendar day following prev.
func (d DayKey) IsNextAfter(prev DayKey) bool {
	if prev.IsZero() || !d.Valid() {
		return false
	}
	next := prev.Next()
	return !next.IsZero() && next == d
}
