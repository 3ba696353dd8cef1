// ABOUTME: Real clock implementation of the core Clock interface

package clock

import "time"

// SystemClock returns the actual current time.
type SystemClock struct{}

// NewSystemClock creates a new system clock instance
func NewSystemClock() SystemClock {
	return SystemClock{}
}

// Now returns the current time
func (SystemClock) Now() time.Time {
	return time.Now()
}
