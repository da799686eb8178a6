package galleria

import "math"

// Title offsets are percentages of the title's line height: 100 is fully
// hidden below the baseline mask, 0 fully shown, -100 fully hidden above.
const (
	titleHiddenBelow   = 100.0
	titleHiddenAbove   = -100.0
	titleRate          = 0.14
	titleDelayDrain    = 0.08 // entry delay drained per nominal frame
	titleDefaultDelay  = 1.0
	titleChainDelay    = 0.35 // delay applied to a queued next title
	titleExitThreshold = 50.0 // offsets nearer 0 than this exit upward
	titleNearTarget    = 4.0  // chain trigger: exit "close enough" to hand over
	titleDoneEpsilon   = 0.1  // definitive completion
)

// TitleMachine slides one slot title in and out vertically. An
// interrupted exit resumes from its current offset rather than a
// hardcoded start, and a queued next title takes over slightly before
// the exit fully completes so back-to-back slide titles overlap instead
// of stalling on a fully-hidden gap.
type TitleMachine struct {
	focused  int // -1 when no title is assigned
	entering bool
	exiting  bool

	offset float64 // current vertical offset percent
	target float64
	delay  float64

	// Single-slot mailbox for the queued follow-up title; overwritten by
	// the latest SetNextTitle, consumed once when the exit nears target.
	nextIndex int
	hasNext   bool
}

// NewTitleMachine returns a machine with no title shown.
func NewTitleMachine() *TitleMachine {
	return &TitleMachine{focused: -1, offset: titleHiddenBelow}
}

// Show starts revealing the title for index after the default entry delay.
func (t *TitleMachine) Show(index int) {
	t.show(index, titleDefaultDelay)
}

// ShowAfter is Show with a caller-chosen entry delay, used to stagger the
// reveal behind a slide that is still settling.
func (t *TitleMachine) ShowAfter(index int, delay float64) {
	t.show(index, delay)
}

func (t *TitleMachine) show(index int, delay float64) {
	// The new animation starts from wherever the current title sits so an
	// interrupted exit visually resumes instead of jumping.
	if t.focused < 0 {
		t.offset = titleHiddenBelow
	}
	t.focused = index
	t.entering = true
	t.exiting = false
	t.target = 0
	t.delay = delay
}

// Hide slides the current title out, continuing its present motion
// sense: a title that mostly finished entering keeps moving up and out,
// one that barely entered retreats back down.
func (t *TitleMachine) Hide() {
	if t.focused < 0 || t.exiting {
		return
	}
	t.entering = false
	t.exiting = true
	t.delay = 0
	if math.Abs(t.offset) < titleExitThreshold {
		t.target = titleHiddenAbove
	} else {
		t.target = titleHiddenBelow
	}
}

// SetNextTitle queues index to be shown the moment the current exit
// crosses the near-target threshold. At most one title is queued; the
// latest call wins.
func (t *TitleMachine) SetNextTitle(index int) {
	t.nextIndex = index
	t.hasNext = true
}

// ResetNextTitle drops any queued title.
func (t *TitleMachine) ResetNextTitle() {
	t.hasNext = false
}

// Focused returns the index of the title currently owned by the machine,
// or -1 if none.
func (t *TitleMachine) Focused() int {
	return t.focused
}

// Offset returns the current vertical offset percent.
func (t *TitleMachine) Offset() float64 {
	return t.offset
}

// Entering reports whether a reveal is in flight (including its delay).
func (t *TitleMachine) Entering() bool {
	return t.entering
}

// Exiting reports whether a hide is in flight.
func (t *TitleMachine) Exiting() bool {
	return t.exiting
}

// Advance drains the entry delay, then closes the offset toward target.
// Crossing the loose near-target threshold while exiting hands over to
// the queued title; crossing the tight threshold settles the machine.
func (t *TitleMachine) Advance(dt float64) {
	if !t.entering && !t.exiting {
		return
	}

	if t.delay > 0 {
		t.delay -= titleDelayDrain * dt
		if t.delay > 0 {
			return
		}
		t.delay = 0
	}

	t.offset = Decay(t.offset, t.target, titleRate, dt)
	gap := math.Abs(t.target - t.offset)

	if t.exiting && t.hasNext && gap < titleNearTarget {
		next := t.nextIndex
		t.hasNext = false
		t.show(next, titleChainDelay)
		return
	}

	if gap < titleDoneEpsilon {
		t.offset = t.target
		if t.exiting {
			t.focused = -1
		}
		t.entering = false
		t.exiting = false
	}
}

// IsActive reports whether a reveal or hide is still in flight.
func (t *TitleMachine) IsActive() bool {
	return t.entering || t.exiting
}
