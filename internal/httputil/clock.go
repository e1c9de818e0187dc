package httputil

import (
	"time"
)

// Clock supplies timestamps for error envelopes. The indirection keeps envelope
// output deterministic in tests.
type Clock interface {
	Now() time.Time
}

// systemClock implements Clock using the wall clock.
type systemClock struct{}

// Now returns the current time.
func (systemClock) Now() time.Time {
	return time.Now()
}

// NewClock returns a Clock backed by the system wall clock.
func NewClock() Clock {
	return systemClock{}
}

// FixedClock implements Clock with a constant instant. Intended for tests.
type FixedClock struct {
	Instant time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return c.Instant
}
