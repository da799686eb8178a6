package galleria

import "math"

const (
	reticleMaxLength   = 1.0   // normalized marker length when fully shown
	reticleRate        = 0.2   // proportional closing of length and rotation
	reticleDelayDrain  = 0.09  // entry delay drained per nominal frame
	reticleDoneEpsilon = 0.004 // length gap below which show/hide settles
	reticleQuarterTurn = 90.0  // degrees per slide-direction signal
)

// reticleMarker is one show/hide state machine: an optional entry delay
// counted down at a fixed rate (not proportional to the length gap),
// then proportional closing of the length toward 0 or max.
type reticleMarker struct {
	visible  bool
	entering bool
	exiting  bool
	length   float64
	delay    float64
}

func (k *reticleMarker) show(delay float64) {
	if k.entering {
		return
	}
	k.visible = true
	k.entering = true
	k.exiting = false
	k.delay = delay
}

func (k *reticleMarker) hide() {
	if k.exiting || (!k.visible && !k.entering) {
		return
	}
	k.entering = false
	k.exiting = true
	k.delay = 0
}

func (k *reticleMarker) advance(dt float64) {
	if k.delay > 0 {
		k.delay -= reticleDelayDrain * dt
		if k.delay > 0 {
			return
		}
		k.delay = 0
	}

	var target float64
	switch {
	case k.entering:
		target = reticleMaxLength
	case k.exiting:
		target = 0
	default:
		return
	}

	k.length = Decay(k.length, target, reticleRate, dt)
	if math.Abs(target-k.length) < reticleDoneEpsilon {
		k.length = target
		if k.exiting {
			k.visible = false
		}
		k.entering = false
		k.exiting = false
	}
}

func (k *reticleMarker) active() bool {
	return k.entering || k.exiting
}

// ReticleSystem drives the center marker shown in carousel/strip mode
// and the two side markers shown while zoomed. The two are independent
// machines sharing one update law; only the sides carry rotation, which
// signals the direction of the last fullscreen slide in 90° steps.
type ReticleSystem struct {
	center reticleMarker
	sides  reticleMarker

	rotation       float64
	targetRotation float64

	centerDelay float64
	sidesDelay  float64
}

// NewReticleSystem creates a reticle with the center marker shown, the
// idle state of the inline carousel.
func NewReticleSystem(centerDelay, sidesDelay float64) *ReticleSystem {
	r := &ReticleSystem{centerDelay: centerDelay, sidesDelay: sidesDelay}
	r.center.visible = true
	r.center.length = reticleMaxLength
	return r
}

// ShowCenter brings the center marker back and retires the side markers.
// Safe to call every tick: a marker already entering ignores the call.
func (r *ReticleSystem) ShowCenter() {
	r.center.show(r.centerDelay)
	r.sides.hide()
}

// HideCenter retires the center marker and starts the side markers'
// delayed entrance. Safe to call every tick.
func (r *ReticleSystem) HideCenter() {
	r.center.hide()
	r.sides.show(r.sidesDelay)
}

// CenterEntering reports whether the center marker is mid-entrance.
func (r *ReticleSystem) CenterEntering() bool {
	return r.center.entering
}

// SidesEntering reports whether the side markers are mid-entrance.
func (r *ReticleSystem) SidesEntering() bool {
	return r.sides.entering
}

// CenterVisible reports whether the center marker should be drawn.
func (r *ReticleSystem) CenterVisible() bool {
	return r.center.visible
}

// SidesVisible reports whether the side markers should be drawn.
func (r *ReticleSystem) SidesVisible() bool {
	return r.sides.visible
}

// CenterLength returns the center marker's current normalized length.
func (r *ReticleSystem) CenterLength() float64 {
	return r.center.length
}

// SidesLength returns the side markers' current normalized length.
func (r *ReticleSystem) SidesLength() float64 {
	return r.sides.length
}

// SidesRotation returns the side markers' current rotation in degrees.
func (r *ReticleSystem) SidesRotation() float64 {
	return r.rotation
}

// RotateSides steps the side markers' rotation target by a quarter turn
// in the given direction (the sign of direction is used).
func (r *ReticleSystem) RotateSides(direction int) {
	switch {
	case direction > 0:
		r.targetRotation += reticleQuarterTurn
	case direction < 0:
		r.targetRotation -= reticleQuarterTurn
	}
}

// ResetRotation snaps the side markers' rotation back to zero. Used when
// a fresh zoom entrance begins, before any slide direction exists.
func (r *ReticleSystem) ResetRotation() {
	r.rotation = 0
	r.targetRotation = 0
}

// Advance ticks both markers and the rotation. Rotation animates via
// proportional closing regardless of marker visibility.
func (r *ReticleSystem) Advance(dt float64) {
	r.center.advance(dt)
	r.sides.advance(dt)
	r.rotation = Decay(r.rotation, r.targetRotation, reticleRate, dt)
}

// IsActive reports whether any marker or the rotation is still moving.
func (r *ReticleSystem) IsActive() bool {
	return r.center.active() || r.sides.active() ||
		math.Abs(r.targetRotation-r.rotation) > reticleDoneEpsilon
}
