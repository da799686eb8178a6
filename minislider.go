package galleria

import "math"

const (
	sliderSpeed        = 0.035 // linear progress per nominal frame
	sliderMiniExponent = 1.25  // distance power for the toMini stagger
	sliderRevealSpan   = 0.125 // total delay spread of the toSlider reveal
)

// SliderMode identifies what the mini-slider is transitioning toward.
type SliderMode uint8

const (
	SliderInactive SliderMode = iota
	SliderToMini              // fullscreen -> thumbnail strip
	SliderToSlider            // thumbnail strip -> carousel
)

// ItemPhase tags a per-item progress value so the renderer knows which
// start/end rectangle pair to interpolate between. An item reported as
// Retreating has not yet started its toSlider entrance and is still
// playing out its toMini exit.
type ItemPhase uint8

const (
	ItemAdvancing ItemPhase = iota
	ItemRetreating
)

// ItemProgress is the stagger-adjusted progress of a single item.
type ItemProgress struct {
	Phase ItemPhase
	Value float64 // in [0, 1]
}

// MiniSliderMachine manages the enter/exit progress between fullscreen
// and thumbnail-strip presentation. Progress rises linearly; each item
// sees a delayed copy of it so the strip cascades instead of moving as a
// block.
type MiniSliderMachine struct {
	mode    SliderMode
	focused int
	count   int

	progress float64

	// lastProgress shadows the toMini progress across a toSlider
	// interruption: items whose toSlider entrance has not started yet
	// keep playing their toMini motion from this value.
	lastProgress float64

	staggerStrength float64
}

// NewMiniSliderMachine creates an inactive machine over count items.
// staggerStrength scales the toMini per-item delay; zero disables the
// cascade.
func NewMiniSliderMachine(count int, staggerStrength float64) *MiniSliderMachine {
	return &MiniSliderMachine{count: count, staggerStrength: staggerStrength}
}

// ToMini starts the fullscreen-to-thumbnail transition focused on
// focusedIndex.
func (m *MiniSliderMachine) ToMini(focusedIndex int) {
	m.mode = SliderToMini
	m.focused = focusedIndex
	m.progress = 0
	m.lastProgress = 0
}

// ToSlider starts the thumbnail-to-carousel transition, resuming from
// however far the toMini transition got. No-op if inactive.
func (m *MiniSliderMachine) ToSlider() {
	if m.mode == SliderInactive {
		return
	}
	m.lastProgress = m.progress
	m.mode = SliderToSlider
	m.progress = 0
}

// ForceInactive drops the machine back to inactive immediately. The
// orchestrator calls this every tick while the zoom is inactive so stale
// stagger state cannot leak into the next zoom.
func (m *MiniSliderMachine) ForceInactive() {
	m.mode = SliderInactive
	m.progress = 0
	m.lastProgress = 0
}

// Mode returns the current transition mode.
func (m *MiniSliderMachine) Mode() SliderMode {
	return m.mode
}

// Focused returns the focused item index of the current transition.
func (m *MiniSliderMachine) Focused() int {
	return m.focused
}

// Progress returns the raw shared progress in [0, 1].
func (m *MiniSliderMachine) Progress() float64 {
	return m.progress
}

// Advance increases progress linearly, clamped to [0, 1]. In toSlider
// mode the shadow lastProgress advances identically so retreating items
// continue their toMini motion.
func (m *MiniSliderMachine) Advance(dt float64) {
	if m.mode == SliderInactive {
		return
	}
	m.progress = clamp01(m.progress + sliderSpeed*dt)
	if m.mode == SliderToSlider {
		m.lastProgress = clamp01(m.lastProgress + sliderSpeed*dt)
	}
}

// IsActive reports whether a transition is in flight.
func (m *MiniSliderMachine) IsActive() bool {
	return m.mode != SliderInactive && m.progress < 1
}

// miniDelay is the toMini stagger delay for item i: farther items lag
// behind the focused one by a sub-linear power of their distance.
func (m *MiniSliderMachine) miniDelay(i int) float64 {
	if m.count == 0 {
		return 0
	}
	dist := math.Abs(float64(i - m.focused))
	return math.Pow(dist, sliderMiniExponent) / float64(m.count*m.count) * m.staggerStrength
}

// revealDelay is the toSlider stagger delay for item i: a fixed
// sequential spread so thumbnails peel off in index order.
func (m *MiniSliderMachine) revealDelay(i int) float64 {
	if m.count <= 1 {
		return 0
	}
	return float64(i+1) / float64(m.count-1) * sliderRevealSpan
}

// delayed remaps a shared progress through a per-item delay: the item
// holds at 0 until progress passes the delay, then catches up to finish
// at 1 together with the undelayed items.
func delayed(progress, delay float64) float64 {
	if delay >= 1 {
		return 0
	}
	return clamp01((progress - delay) / (1 - delay))
}

// ItemProgress returns item i's stagger-adjusted progress.
//
// During toMini every item advances toward its thumbnail, the farthest
// from focus last. During toSlider items peel back toward the carousel
// in index order; an item whose turn has not come yet is reported as
// Retreating, still moving along the toMini path driven by the shadow
// lastProgress.
func (m *MiniSliderMachine) ItemProgress(i int) ItemProgress {
	switch m.mode {
	case SliderToMini:
		return ItemProgress{Phase: ItemAdvancing, Value: delayed(m.progress, m.miniDelay(i))}
	case SliderToSlider:
		if m.progress-m.revealDelay(i) < 0 {
			return ItemProgress{Phase: ItemRetreating, Value: delayed(m.lastProgress, m.miniDelay(i))}
		}
		return ItemProgress{Phase: ItemAdvancing, Value: delayed(m.progress, m.revealDelay(i))}
	default:
		return ItemProgress{}
	}
}
