package sim

import (
	"sync"
	"time"
)

// Clock provides the time of the simulated world.
type Clock interface {
	Now() time.Time
}

// WallClock follows real time.
type WallClock struct{}

// Now implements Clock.
func (WallClock) Now() time.Time {
	return time.Now()
}

// ManualClock only moves when told to.
type ManualClock struct {
	lock sync.RWMutex
	now  time.Time
}

// NewManualClock creates a ManualClock at the given time.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now implements Clock.
func (c *ManualClock) Now() time.Time {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) time.Time {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

// Set sets the clock.
func (c *ManualClock) Set(t time.Time) {
	c.lock.Lock()
	c.now = t
	c.lock.Unlock()
}
