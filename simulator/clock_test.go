package simulator

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// instantClock fires every After immediately and moves its own time forward
// by the requested delay, so a whole run completes without waiting.
type instantClock struct {
	clockwork.Clock

	mu  sync.Mutex
	now time.Time
}

func newInstantClock() *instantClock {
	return &instantClock{Clock: clockwork.NewFakeClock()}
}

func (c *instantClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *instantClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	ch := make(chan time.Time, 1)
	ch <- c.now
	return ch
}
