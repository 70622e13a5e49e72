package window

import "time"

// Clock converts fixed update ticks into animation steps
type Clock struct {
	interval time.Duration
	tick     time.Duration
	acc      time.Duration
}

// NewClock steps once per interval given updates every tick
func NewClock(interval, tick time.Duration) Clock {
	if interval <= 0 {
		interval = tick
	}
	return Clock{interval: interval, tick: tick}
}

// Tick advances one update and returns the number of due steps
func (c *Clock) Tick() int {
	c.acc += c.tick
	n := int(c.acc / c.interval)
	c.acc -= time.Duration(n) * c.interval
	return n
}
