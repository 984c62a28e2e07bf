package event

import (
	"sync"
	"time"
)

// Clock supplies creation times.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in local time.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock returns a fixed instant, optionally advancing by Step after
// each call. Safe for concurrent use.
type FixedClock struct {
	mu   sync.Mutex
	t    time.Time
	step time.Duration
}

// NewFixedClock creates a clock frozen at t.
func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{t: t}
}

// NewSteppingClock creates a clock starting at t that advances by step
// after every Now call.
func NewSteppingClock(t time.Time, step time.Duration) *FixedClock {
	return &FixedClock{t: t, step: step}
}

// Now implements Clock.
func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.t
	c.t = c.t.Add(c.step)
	return now
}
