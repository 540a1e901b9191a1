package core

import "time"

// TimeProvider abstracts the clock so cooldown and timer logic can be tested
// against fixed times.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	Until(t time.Time) time.Duration
}
