package contacts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestIsoWeekday verifies the Monday=1..Sunday=7 numbering the weekend
// correction is built on. Go's time.Weekday starts the week on Sunday=0,
// which is exactly the value that must be remapped.
func TestIsoWeekday(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{"monday", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), 1},
		{"friday", time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC), 5},
		{"saturday", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), 6},
		{"sunday", time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isoWeekday(tt.date))
		})
	}
}
