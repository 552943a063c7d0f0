package session

import (
	"sync"
	"time"
)

// countdown is the re-armable timer behind the expired-session flow.
// Arming always starts from the full duration; a disarmed countdown
// never fires. It is not cancellable by the fire path itself.
type countdown struct {
	mu       sync.Mutex
	duration time.Duration
	deadline time.Time
	timer    *time.Timer
	fire     func()
}

func newCountdown(d time.Duration, fire func()) *countdown {
	return &countdown{duration: d, fire: fire}
}

// arm starts the countdown from its full duration, replacing any
// countdown already in flight.
func (c *countdown) arm() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
	}
	c.deadline = time.Now().Add(c.duration)
	c.timer = time.AfterFunc(c.duration, func() {
		c.mu.Lock()
		c.timer = nil
		c.deadline = time.Time{}
		c.mu.Unlock()
		c.fire()
	})
}

// stop disarms the countdown if armed.
func (c *countdown) stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.deadline = time.Time{}
}

// remaining reports time left until fire, zero when disarmed or past
// due.
func (c *countdown) remaining() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.deadline.IsZero() {
		return 0
	}
	if d := time.Until(c.deadline); d > 0 {
		return d
	}
	return 0
}
