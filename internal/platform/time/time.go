// Package time contains time related helpers
// Clock is the only place the API and CLI read the wall clock
package time

import "time"

// Clock reports the current time
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain func to Clock
type ClockFunc func() time.Time

// Now implements Clock
func (f ClockFunc) Now() time.Time { return f() }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// System is the wall clock in UTC
var System Clock = systemClock{}

// Year returns the calendar year of c, falling back to the system clock when c is nil
func Year(c Clock) int {
	if c == nil {
		c = System
	}
	return c.Now().Year()
}

// FixedYear returns a clock pinned to Jan 1 of year, used for reproducible runs and tests
func FixedYear(year int) Clock {
	t := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return ClockFunc(func() time.Time { return t })
}

// Pinned returns FixedYear(year) when year > 0, otherwise fallback
func Pinned(year int, fallback Clock) Clock {
	if year > 0 {
		return FixedYear(year)
	}
	if fallback == nil {
		return System
	}
	return fallback
}
