// Package biztime provides utilities for civil timezone calculations.
// Every deadline comparison and every human-facing timestamp in the system
// uses a single fixed civil timezone (default America/Sao_Paulo).
//
// Design principles:
// - "now" is always computed in the civil timezone
// - A stored timestamp without an offset is wall-clock time in the civil
//   timezone, never UTC
// - A timestamp carrying an offset is converted to the civil timezone
//   before any comparison
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the default civil timezone.
	DefaultTimezone = "America/Sao_Paulo"
)

var (
	civilLocation     *time.Location
	civilLocationOnce sync.Once
	initErr           error
)

// Init initializes the civil timezone. Should be called once at startup.
// If tz is empty, defaults to America/Sao_Paulo.
func Init(tz string) error {
	civilLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		civilLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// MustInit initializes the civil timezone and panics on error.
func MustInit(tz string) {
	if err := Init(tz); err != nil {
		panic(fmt.Sprintf("failed to initialize civil timezone %q: %v", tz, err))
	}
}

// Location returns the civil timezone location.
// If not explicitly initialized, automatically initializes with the default timezone.
func Location() *time.Location {
	if civilLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return civilLocation
}

// Now returns the current time in the civil timezone.
func Now() time.Time {
	return time.Now().In(Location())
}

// In converts a time carrying any offset to the civil timezone.
func In(t time.Time) time.Time {
	return t.In(Location())
}

// FromWall reinterprets t's wall-clock fields in the civil timezone,
// discarding whatever location t arrived with. Database drivers scan
// offset-less DATETIME columns into UTC or the session location; those
// values are civil wall times and must be rebuilt here before comparison.
func FromWall(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), Location())
}

// ToWall is the storage-side inverse of FromWall. It renders t in the civil
// timezone and re-tags the wall-clock fields as UTC, so drivers serialize
// them into DATETIME columns without shifting them.
func ToWall(t time.Time) time.Time {
	civil := t.In(Location())
	return time.Date(civil.Year(), civil.Month(), civil.Day(), civil.Hour(), civil.Minute(), civil.Second(), civil.Nanosecond(), time.UTC)
}

// AtClock returns the instant on base's calendar date with the clock set to
// hour:minute, seconds and sub-seconds zeroed, in the civil timezone.
func AtClock(base time.Time, hour, minute int) time.Time {
	civil := base.In(Location())
	return time.Date(civil.Year(), civil.Month(), civil.Day(), hour, minute, 0, 0, Location())
}

// NextDay advances t by one civil calendar day.
func NextDay(t time.Time) time.Time {
	return t.In(Location()).AddDate(0, 0, 1)
}

// StartOfDay returns the start of t's day (00:00:00) in the civil timezone.
func StartOfDay(t time.Time) time.Time {
	civil := t.In(Location())
	return time.Date(civil.Year(), civil.Month(), civil.Day(), 0, 0, 0, 0, Location())
}

// Format formats t as a string in the civil timezone.
func Format(t time.Time, layout string) string {
	return t.In(Location()).Format(layout)
}

// ParseDate parses a date string (YYYY-MM-DD) as civil timezone midnight.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", dateStr, Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q: %w", dateStr, err)
	}
	return t, nil
}
