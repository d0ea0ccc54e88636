package libutil

import "time"

// Clock measures seconds since it was created or last restarted.
// It relies on the monotonic reading carried by time.Time, so wall clock jumps do not affect it.
type Clock struct {
	start time.Time
}

func NewClock() *Clock {
	return &Clock{start: time.Now()}
}

func (c *Clock) Restart() {
	c.start = time.Now()
}

func (c *Clock) Elapsed() float32 {
	d := time.Since(c.start)
	if d < 0 {
		return 0
	}
	return float32(d.Seconds())
}

// Lap returns the elapsed time and restarts the clock.
func (c *Clock) Lap() float32 {
	now := time.Now()
	d := now.Sub(c.start)
	c.start = now
	if d < 0 {
		return 0
	}
	return float32(d.Seconds())
}
