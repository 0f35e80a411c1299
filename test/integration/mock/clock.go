// Package mock provides test doubles for the integration suite.
package mock

import (
	"sync"
	"time"
)

// Clock is a settable clock for tests. It satisfies the engine's clock
// adapter, so scenarios can pin "today" and move it forward.
type Clock struct {
	mu      sync.Mutex
	current time.Time
}

// NewClock creates a clock pinned to the given instant.
func NewClock(current time.Time) *Clock {
	return &Clock{current: current}
}

// SetCurrentTime repins the clock.
func (c *Clock) SetCurrentTime(current time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = current
}

// Advance moves the clock forward by the given number of days.
func (c *Clock) Advance(days int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.AddDate(0, 0, days)
}

// Now returns the pinned instant.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}
