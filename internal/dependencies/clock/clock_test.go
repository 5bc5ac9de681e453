package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fixedClock time.Time

func (f fixedClock) Now() time.Time { return time.Time(f) }

func TestTodayUsesUTC(t *testing.T) {
	sydney := time.FixedZone("AEDT", 11*60*60)

	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{"utc midday", time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), "2024-01-01"},
		{"ahead of utc", time.Date(2024, 1, 2, 9, 0, 0, 0, sydney), "2024-01-01"},
		{"utc midnight", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "2024-03-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Today(fixedClock(tt.now)))
		})
	}
}
