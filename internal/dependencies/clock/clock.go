package clock

import "time"

// DayLayout formats a UTC calendar day. Daily boards are seeded with it.
const DayLayout = "2006-01-02"

// Clock provides time operations that can be mocked for testing
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// Today returns the current UTC day of c, e.g. "2024-01-01".
// Every player worldwide shares the same day boundary.
func Today(c Clock) string {
	return c.Now().UTC().Format(DayLayout)
}
