package animation

import (
	"sync"
	"time"
)

// Clock provides time for animations.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

var (
	clockMu sync.RWMutex
	clock   Clock = realClock{}
)

// SetClock replaces the animation clock. Returns the previous clock
// so callers can restore it during cleanup. Nil restores the system clock.
func SetClock(c Clock) Clock {
	clockMu.Lock()
	defer clockMu.Unlock()
	prev := clock
	if c == nil {
		c = realClock{}
	}
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time {
	clockMu.RLock()
	defer clockMu.RUnlock()
	return clock.Now()
}
