package mocks

import (
	"time"

	"github.com/mcoot/frogfen/internal/dependencies/clock"
)

// MockClock is a mock implementation of Clock for testing
type MockClock struct {
	CurrentTime time.Time
}

var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a MockClock set to the given time
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{CurrentTime: t}
}

// Now returns the mocked current time
func (c *MockClock) Now() time.Time {
	return c.CurrentTime
}

// Advance moves the clock forward by the given duration
func (c *MockClock) Advance(d time.Duration) {
	c.CurrentTime = c.CurrentTime.Add(d)
}

// NextDay moves the clock to the same time on the following UTC day, which
// rolls the daily board over
func (c *MockClock) NextDay() {
	c.CurrentTime = c.CurrentTime.AddDate(0, 0, 1)
}
