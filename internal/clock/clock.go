// Package clock abstracts the time source so that time-dependent logic
// (overdue flags, dashboard windows) can be tested against a fixed instant.
package clock

import "time"

// Clock supplies the current time in UTC.
type Clock interface {
	Now() time.Time
}

// System is the real wall clock.
type System struct{}

// Now returns the current time in UTC.
func (System) Now() time.Time { return time.Now().UTC() }

// Fixed is a clock pinned to a single instant.
type Fixed struct {
	Instant time.Time
}

// Now returns the pinned instant.
func (f Fixed) Now() time.Time { return f.Instant }
