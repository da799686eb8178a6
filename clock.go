package galleria

import "time"

// Smoothing constants throughout the package are tuned against this
// nominal frame duration. The clock divides raw elapsed time by it, so
// machines see dt ~= 1.0 at 60 FPS regardless of the actual refresh rate.
const (
	tickDivisor  = 1000.0 / 60.0 // milliseconds per nominal frame
	maxTickDelta = 50.0          // milliseconds; guards against long stalls
)

// Clock produces the normalized elapsed-time value that drives every
// state machine. Raw frame time is clamped to maxTickDelta before
// normalization so a stalled frame (tab backgrounded, window dragged)
// cannot destabilize the proportional-closing formulas.
type Clock struct {
	last   time.Time
	manual bool
}

// NewClock returns a wall-time clock. The first Tick reports a full
// nominal frame rather than the (arbitrary) time since construction.
func NewClock() *Clock {
	return &Clock{}
}

// newManualClock returns a clock whose Tick is never called; tests feed
// machines directly with hand-picked dt values instead.
func newManualClock() *Clock {
	return &Clock{manual: true}
}

// Tick returns the normalized elapsed time since the previous Tick.
func (c *Clock) Tick() float64 {
	if c.manual {
		return 1
	}
	now := time.Now()
	if c.last.IsZero() {
		c.last = now
		return 1
	}
	ms := float64(now.Sub(c.last)) / float64(time.Millisecond)
	c.last = now
	if ms > maxTickDelta {
		ms = maxTickDelta
	}
	if ms < 0 {
		ms = 0
	}
	return ms / tickDivisor
}
