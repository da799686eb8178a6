package galleria

import "math"

// Stage offsets are normalized in units of mask width: 0 is centered,
// ±0.5 (image) / ±1 (mask) is fully off to one side. The image moving at
// half the mask speed produces the parallax reveal during fullscreen
// image-to-image slides.
const (
	stageImageSpan   = 0.5
	stageMaskSpan    = 1.0
	stageRate        = 0.16  // proportional closing rate for both offsets
	stageDoneEpsilon = 0.001 // image-offset delta below which a slide is settled
)

type stageSlot struct {
	imageOffset float64
	imageTarget float64
	maskOffset  float64
	maskTarget  float64
}

// StageMachine holds the per-slot offset state used during fullscreen
// image-to-image transitions. Every slot's offsets monotonically
// approach their targets; the machine is idle once all image offsets are
// within stageDoneEpsilon of target.
type StageMachine struct {
	slots  []stageSlot
	center int

	// jumpNext selects the jump policy for the next TransitionTo call
	// and auto-clears after being consumed once.
	jumpNext bool

	renderOrder []int
}

// NewStageMachine creates a stage for count slots, all snapped to center 0.
func NewStageMachine(count int) *StageMachine {
	m := &StageMachine{
		slots:       make([]stageSlot, count),
		renderOrder: make([]int, count),
	}
	m.InitializeStage(0)
	return m
}

// Len returns the slot count.
func (m *StageMachine) Len() int {
	return len(m.slots)
}

// Center returns the currently centered slot index.
func (m *StageMachine) Center() int {
	return m.center
}

// Offsets returns slot i's current image and mask offsets.
func (m *StageMachine) Offsets(i int) (image, mask float64) {
	return m.slots[i].imageOffset, m.slots[i].maskOffset
}

// Targets returns slot i's target image and mask offsets.
func (m *StageMachine) Targets(i int) (image, mask float64) {
	return m.slots[i].imageTarget, m.slots[i].maskTarget
}

// sideSign returns -1 for slots left of center, +1 for right, 0 for the
// center slot itself.
func sideSign(slot, center int) float64 {
	switch {
	case slot < center:
		return -1
	case slot > center:
		return 1
	default:
		return 0
	}
}

// InitializeStage snaps every slot's offsets based on its position
// relative to centerIndex, with no easing. Used when first entering
// fullscreen mode.
func (m *StageMachine) InitializeStage(centerIndex int) {
	for i := range m.slots {
		sign := sideSign(i, centerIndex)
		m.slots[i] = stageSlot{
			imageOffset: sign * stageImageSpan,
			imageTarget: sign * stageImageSpan,
			maskOffset:  sign * stageMaskSpan,
			maskTarget:  sign * stageMaskSpan,
		}
	}
	m.center = centerIndex
	m.rebuildRenderOrder()
}

// SetJump arms the jump policy for the next TransitionTo call. Used when
// the user picks a non-adjacent slot directly: animating every slot in
// between would sweep implausibly across unrelated images, so only the
// two endpoints animate and everything else snaps.
func (m *StageMachine) SetJump() {
	m.jumpNext = true
}

// JumpTo is TransitionTo under the jump policy.
func (m *StageMachine) JumpTo(newIndex int) {
	m.SetJump()
	m.TransitionTo(newIndex)
}

// TransitionTo retargets every slot relative to newIndex. Under the
// sequential policy (default) all offsets animate continuously; under
// the jump policy (armed by SetJump, consumed here) only the old and new
// center slots animate and every other slot snaps to its new target.
func (m *StageMachine) TransitionTo(newIndex int) {
	jump := m.jumpNext
	m.jumpNext = false
	oldCenter := m.center

	for i := range m.slots {
		sign := sideSign(i, newIndex)
		m.slots[i].imageTarget = sign * stageImageSpan
		m.slots[i].maskTarget = sign * stageMaskSpan
		if jump && i != oldCenter && i != newIndex {
			m.slots[i].imageOffset = m.slots[i].imageTarget
			m.slots[i].maskOffset = m.slots[i].maskTarget
		}
	}

	m.center = newIndex
	m.rebuildRenderOrder()
}

// Advance applies proportional closing to every slot's image and mask
// offsets.
func (m *StageMachine) Advance(dt float64) {
	for i := range m.slots {
		s := &m.slots[i]
		s.imageOffset = Decay(s.imageOffset, s.imageTarget, stageRate, dt)
		s.maskOffset = Decay(s.maskOffset, s.maskTarget, stageRate, dt)
	}
}

// IsActive reports whether any slot's image offset is still more than
// stageDoneEpsilon away from its target.
func (m *StageMachine) IsActive() bool {
	for i := range m.slots {
		if math.Abs(m.slots[i].imageTarget-m.slots[i].imageOffset) > stageDoneEpsilon {
			return true
		}
	}
	return false
}

// RenderOrder returns slot indices in painter order: farthest from the
// center first, the centered slot last, so the focused slot stacks on
// top of its neighbors during overlap. The slice is owned by the machine
// and rebuilt whenever the center changes.
func (m *StageMachine) RenderOrder() []int {
	return m.renderOrder
}

// rebuildRenderOrder orders indices by decreasing distance from center,
// alternating sides so immediate neighbors land just under the center.
func (m *StageMachine) rebuildRenderOrder() {
	n := len(m.slots)
	m.renderOrder = m.renderOrder[:0]
	for d := n - 1; d >= 1; d-- {
		if i := m.center - d; i >= 0 {
			m.renderOrder = append(m.renderOrder, i)
		}
		if i := m.center + d; i < n {
			m.renderOrder = append(m.renderOrder, i)
		}
	}
	m.renderOrder = append(m.renderOrder, m.center)
}
