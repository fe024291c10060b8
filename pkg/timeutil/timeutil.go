// Package timeutil is the minimal datetime collaborator the Scheduling
// Engine calls into: UTC validation, fixed offsets for the short-term
// learning steps, and whole-day differences for the Memory Math. It
// exists as its own package, not inline time.Time arithmetic in the
// engine, so that boundary stays an import, not a convention.
package timeutil

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotUTC is returned by ValidateUTC when a time.Time's location isn't
// time.UTC.
var ErrNotUTC = errors.New("timeutil: instant is not UTC")

// ValidateUTC rejects any time.Time not constructed in the UTC location.
func ValidateUTC(t time.Time) error {
	if t.Location() != time.UTC {
		return fmt.Errorf("%w: location %q", ErrNotUTC, t.Location())
	}
	return nil
}

// AddMinutes returns t shifted forward by m minutes.
func AddMinutes(t time.Time, m int) time.Time {
	return t.Add(time.Duration(m) * time.Minute)
}

// AddDays returns t shifted forward by n days of 24 hours each.
func AddDays(t time.Time, n int) time.Time {
	return t.Add(time.Duration(n) * 24 * time.Hour)
}

// WholeDayDiff returns the number of whole 24-hour days between a and b,
// always non-negative regardless of which comes first.
func WholeDayDiff(a, b time.Time) int {
	d := b.Sub(a)
	if d < 0 {
		d = -d
	}
	return int(d / (24 * time.Hour))
}
