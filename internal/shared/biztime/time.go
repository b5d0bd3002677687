// Package biztime pins all civil time handling to one business timezone.
//
// Ticket and job card timestamps are recorded in this zone, and report
// windows are computed from its day boundaries. Server local time is never used.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

// DefaultTimezone is used when no timezone is configured.
const DefaultTimezone = "Africa/Nairobi"

// DateLayout is the layout accepted for report and due date parameters.
const DateLayout = "2006-01-02"

var (
	mu          sync.RWMutex
	bizLocation *time.Location
	clock       = time.Now
)

// Init sets the business timezone. An empty name selects DefaultTimezone.
func Init(tz string) error {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("load business timezone %q: %w", tz, err)
	}
	mu.Lock()
	bizLocation = loc
	mu.Unlock()
	return nil
}

// Location returns the business timezone, initialising the default on first use.
func Location() *time.Location {
	mu.RLock()
	loc := bizLocation
	mu.RUnlock()
	if loc != nil {
		return loc
	}
	if err := Init(""); err != nil {
		panic(fmt.Sprintf("biztime: %v", err))
	}
	return Location()
}

// Now returns the current time in the business timezone.
func Now() time.Time {
	return clock().In(Location())
}

// SetClock replaces the time source and returns a function restoring it. Tests only.
func SetClock(fn func() time.Time) (restore func()) {
	prev := clock
	clock = fn
	return func() { clock = prev }
}

// In converts t to the business timezone.
func In(t time.Time) time.Time {
	return t.In(Location())
}

// StartOfDay returns local midnight of the business day containing t.
func StartOfDay(t time.Time) time.Time {
	b := t.In(Location())
	return time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, Location())
}

// EndOfDay returns the last instant of the business day containing t.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// StartOfMonth returns the first instant of the business month containing t.
func StartOfMonth(t time.Time) time.Time {
	b := t.In(Location())
	return time.Date(b.Year(), b.Month(), 1, 0, 0, 0, 0, Location())
}

// ParseDate parses YYYY-MM-DD as business midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// Window returns the half-open range [start of from, start of the day after to).
// Zero values default to the start of the current month and today.
func Window(from, to time.Time) (time.Time, time.Time) {
	now := Now()
	if from.IsZero() {
		from = StartOfMonth(now)
	}
	if to.IsZero() {
		to = now
	}
	return StartOfDay(from), StartOfDay(to).AddDate(0, 0, 1)
}

// Format renders t in the business timezone.
func Format(t time.Time, layout string) string {
	return t.In(Location()).Format(layout)
}
