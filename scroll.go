package galleria

import "math"

// Scroll physics constants. Damping factors are per-nominal-frame
// velocity multipliers; rates feed Decay.
const (
	scrollBaseDamping    = 0.94  // velocity retained per nominal frame
	scrollEdgeDamping    = 0.80  // stronger deceleration near an edge
	scrollEdgeZone       = 0.12  // fraction of total range counted as "near"
	scrollSeekRate       = 0.09  // velocity override factor while seeking
	scrollSmoothRate     = 0.22  // smoothed-position decay rate
	scrollStopEpsilon    = 0.05  // pixels; below this a seek snaps to target
	scrollRestVelocity   = 0.005 // pixels/frame; below this physics is at rest
	scrollSmoothEpsilon  = 0.01  // pixels; smoothed considered converged
)

// ScrollPhysics is the velocity-based position model behind the inline
// carousel. Position is the authoritative offset, updated instantly by
// velocity integration and hard-clamped to [minScroll, maxScroll].
// Smoothed lags Position via exponential decay and is what rendering and
// hit-testing read, giving a one-frame-lagged but jitter-free value.
type ScrollPhysics struct {
	Position float64
	Smoothed float64
	Velocity float64

	minScroll float64
	maxScroll float64

	// target is a single-slot mailbox: at most one pending programmatic
	// destination, overwritten by the latest request, cleared on arrival
	// or on hitting an edge.
	target    float64
	hasTarget bool
}

// NewScrollPhysics returns physics clamped to [minScroll, maxScroll].
func NewScrollPhysics(minScroll, maxScroll float64) *ScrollPhysics {
	return &ScrollPhysics{minScroll: minScroll, maxScroll: maxScroll}
}

// SetBounds replaces the scroll range and re-clamps the current position.
func (p *ScrollPhysics) SetBounds(minScroll, maxScroll float64) {
	p.minScroll = minScroll
	p.maxScroll = maxScroll
	p.Position = clamp(p.Position, minScroll, maxScroll)
}

// Bounds returns the current scroll range.
func (p *ScrollPhysics) Bounds() (minScroll, maxScroll float64) {
	return p.minScroll, p.maxScroll
}

// AddVelocity injects an input impulse (drag delta, wheel delta).
// Any pending seek is abandoned: user input wins over programmatic
// navigation.
func (p *ScrollPhysics) AddVelocity(dv float64) {
	p.hasTarget = false
	p.Velocity += dv
}

// SeekTo requests a programmatic glide to pos. The destination is
// clamped to the scroll range. A later SeekTo overwrites an earlier one.
func (p *ScrollPhysics) SeekTo(pos float64) {
	p.target = clamp(pos, p.minScroll, p.maxScroll)
	p.hasTarget = true
}

// Seeking reports whether a programmatic destination is pending.
func (p *ScrollPhysics) Seeking() bool {
	return p.hasTarget
}

// Advance integrates velocity into position, applies damping, and decays
// the smoothed position toward the authoritative one.
func (p *ScrollPhysics) Advance(dt float64) {
	if p.hasTarget {
		// Seeking overrides momentum: velocity is recomputed from the
		// remaining gap every tick rather than damped from its prior value.
		p.Velocity = scrollSeekRate * (p.target - p.Position)
		p.Position += p.Velocity * dt
		if math.Abs(p.target-p.Position) < scrollStopEpsilon {
			p.Position = p.target
			p.hasTarget = false
			p.Velocity = 0
		}
	} else {
		p.Position += p.Velocity * dt
		p.Velocity *= math.Pow(p.dampingFactor(), dt)
		if math.Abs(p.Velocity) < scrollRestVelocity {
			p.Velocity = 0
		}
	}

	// Hitting an edge kills momentum and cancels programmatic navigation.
	if p.Position < p.minScroll || p.Position > p.maxScroll {
		p.Position = clamp(p.Position, p.minScroll, p.maxScroll)
		p.Velocity = 0
		p.hasTarget = false
	}

	p.Smoothed = Decay(p.Smoothed, p.Position, scrollSmoothRate, dt)
}

// dampingFactor returns the per-frame velocity multiplier. Deceleration
// strengthens the closer the position is to the edge the velocity points
// at: within the edge zone the factor ramps from the base constant down
// to the edge constant.
func (p *ScrollPhysics) dampingFactor() float64 {
	zone := (p.maxScroll - p.minScroll) * scrollEdgeZone
	if zone <= 0 {
		return scrollBaseDamping
	}

	var dist float64
	switch {
	case p.Velocity < 0:
		dist = p.Position - p.minScroll
	case p.Velocity > 0:
		dist = p.maxScroll - p.Position
	default:
		return scrollBaseDamping
	}
	if dist >= zone {
		return scrollBaseDamping
	}

	k := 1 - dist/zone // 0 at zone boundary, 1 at the edge
	return Lerp(scrollBaseDamping, scrollEdgeDamping, k*k)
}

// IsActive reports whether the physics still has visible motion: pending
// seek, live velocity, or a smoothed position that has not yet converged.
func (p *ScrollPhysics) IsActive() bool {
	return p.hasTarget ||
		p.Velocity != 0 ||
		math.Abs(p.Smoothed-p.Position) > scrollSmoothEpsilon
}
