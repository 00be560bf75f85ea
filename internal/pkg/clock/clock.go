// Package clock abstracts the time source so expiry logic can be tested
// against a fixed moment instead of the wall clock.
package clock

import "time"

// Clocker is the time source used by components with time-bounded state.
type Clocker interface {
	Now() time.Time
}

// SystemClock reads the current system time.
type SystemClock struct{}

// New returns the production clock.
func New() *SystemClock {
	return &SystemClock{}
}

// Now returns the current system time.
func (*SystemClock) Now() time.Time {
	return time.Now()
}

// Fixed is a Clocker pinned to a single instant, for tests.
type Fixed struct {
	At time.Time
}

// Now returns the pinned instant.
func (f Fixed) Now() time.Time {
	return f.At
}
