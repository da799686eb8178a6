package galleria

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	counterSnapDuration = 18.0 // nominal frames for the snap translate
	counterLinearSpeed  = 0.05 // progress per nominal frame (smooth, clipped)
	counterFadeSpeed    = 0.6  // fraction of the transition the fades occupy
)

// CounterStyle selects how the numeric index label animates between
// values. The style is fixed at construction and not switchable at
// runtime.
type CounterStyle uint8

const (
	// CounterSnap translates the previous number fully away over a fixed
	// duration with quadratic ease-out.
	CounterSnap CounterStyle = iota
	// CounterSmooth cross-fades the outgoing and incoming numbers.
	CounterSmooth
	// CounterClipped scrolls the numbers vertically inside a clip
	// rectangle with no fade.
	CounterClipped
)

// CounterMachine animates the numeric slot-index label. The target index
// is re-derived from the authoritative scroll position: slot boundaries
// sit at width/2+gap/2 and every width+gap thereafter, so the label
// always names the slot nearest center.
type CounterMachine struct {
	style CounterStyle
	count int

	slotWidth float64
	slotGap   float64

	current   int
	target    int
	direction int // +1 scrolling to a higher index, -1 lower

	progress float64
	tween    *gween.Tween // snap style only
}

// NewCounterMachine creates a settled counter at index 0.
func NewCounterMachine(style CounterStyle, count int, slotWidth, slotGap float64) *CounterMachine {
	return &CounterMachine{
		style:     style,
		count:     count,
		slotWidth: slotWidth,
		slotGap:   slotGap,
		progress:  1,
	}
}

// SetSlotMetrics updates the geometry the scroll-to-index derivation
// uses, after a resize or reconfigure.
func (c *CounterMachine) SetSlotMetrics(slotWidth, slotGap float64) {
	c.slotWidth = slotWidth
	c.slotGap = slotGap
}

// indexForScroll maps a scroll position to the nearest slot index.
func (c *CounterMachine) indexForScroll(pos float64) int {
	span := c.slotWidth + c.slotGap
	if span <= 0 {
		return 0
	}
	idx := int(math.Floor((pos + span/2) / span))
	if idx < 0 {
		idx = 0
	}
	if idx > c.count-1 {
		idx = c.count - 1
	}
	return idx
}

// TrackScroll re-derives the target index from the authoritative scroll
// position and, on a change, restarts the style's transition and records
// the direction for the exit/entry choreography.
func (c *CounterMachine) TrackScroll(pos float64) {
	c.retarget(c.indexForScroll(pos))
}

// SetTarget retargets the counter directly (programmatic navigation).
func (c *CounterMachine) SetTarget(index int) {
	c.retarget(index)
}

func (c *CounterMachine) retarget(idx int) {
	if idx == c.target {
		return
	}
	if idx > c.target {
		c.direction = 1
	} else {
		c.direction = -1
	}
	c.current = c.target
	c.target = idx
	c.progress = 0
	if c.style == CounterSnap {
		c.tween = gween.New(0, 1, counterSnapDuration, ease.OutQuad)
	}
}

// Advance drives the transition toward completion; once settled, the
// current index catches up to the target.
func (c *CounterMachine) Advance(dt float64) {
	if c.progress >= 1 {
		return
	}
	switch c.style {
	case CounterSnap:
		if c.tween == nil {
			c.progress = 1
		} else {
			v, done := c.tween.Update(float32(dt))
			c.progress = float64(v)
			if done {
				c.progress = 1
				c.tween = nil
			}
		}
	default:
		c.progress = clamp01(c.progress + counterLinearSpeed*dt)
	}
	if c.progress >= 1 {
		c.current = c.target
	}
}

// IsActive reports whether a transition is in flight.
func (c *CounterMachine) IsActive() bool {
	return c.progress < 1
}

// Current returns the settled (outgoing) index.
func (c *CounterMachine) Current() int {
	return c.current
}

// Target returns the index the counter is animating toward.
func (c *CounterMachine) Target() int {
	return c.target
}

// Direction returns the recorded direction of the last retarget.
func (c *CounterMachine) Direction() int {
	return c.direction
}

// Style returns the presentation style fixed at construction.
func (c *CounterMachine) Style() CounterStyle {
	return c.style
}

// Offset returns the translate fraction in [0, 1] used by the snap and
// clipped styles: 0 means the outgoing number is still in place, 1 means
// the incoming number has fully arrived.
func (c *CounterMachine) Offset() float64 {
	return c.progress
}

// OutgoingOpacity returns the outgoing number's opacity for the smooth
// style. It reaches 0 no later than the incoming number reaches 1.
func (c *CounterMachine) OutgoingOpacity() float64 {
	if c.style != CounterSmooth {
		return 1
	}
	return 1 - clamp01(c.progress/counterFadeSpeed)
}

// IncomingOpacity returns the incoming number's opacity for the smooth
// style.
func (c *CounterMachine) IncomingOpacity() float64 {
	if c.style != CounterSmooth {
		return 1
	}
	return clamp01(c.progress)
}
