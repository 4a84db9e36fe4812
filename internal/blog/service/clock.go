package service

import "time"

// Clock returns the current time. Services default to time.Now.
type Clock func() time.Time

// now returns the clock's time in UTC at millisecond precision, which is
// what the API exposes.
func (c Clock) now() time.Time {
	if c == nil {
		c = time.Now
	}
	return c().UTC().Truncate(time.Millisecond)
}
