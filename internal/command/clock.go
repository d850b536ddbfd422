package command

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// It supplies "today" for the birthdays query and the calendar export.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}
