package galleria

const (
	zoomRate        = 0.2 // proportional closing of progress
	zoomEnterScale  = 0.2 // entering runs on a slowed clock
	zoomExitScale   = 0.8 // exiting runs near full speed
	zoomDoneEpsilon = 0.001
)

// ZoomDirection describes what the zoom machine is currently doing.
type ZoomDirection uint8

const (
	ZoomIdle ZoomDirection = iota
	ZoomEntering
	ZoomExiting
)

// ZoomMachine manages the enter/exit progress between inline and
// fullscreen presentation. It owns one StageMachine sized to the slot
// count: while the stage reports itself mid-transition, rendering
// delegates to it (all slots drawn in stacked offset form); otherwise
// only the focused slot is drawn.
type ZoomMachine struct {
	active   bool
	dir      ZoomDirection
	focused  int
	progress float64

	stage *StageMachine
}

// NewZoomMachine creates an inactive zoom over count slots.
func NewZoomMachine(count int) *ZoomMachine {
	return &ZoomMachine{stage: NewStageMachine(count)}
}

// Enter starts (or restarts) the zoom entrance on index. Any exit in
// progress is cancelled and the stage is snapped to the new center.
func (z *ZoomMachine) Enter(index int) {
	z.active = true
	z.dir = ZoomEntering
	z.focused = index
	z.progress = 0
	z.stage.InitializeStage(index)
}

// Exit starts the zoom exit; progress decays back toward zero and the
// machine deactivates once it is near zero. No-op when inactive.
func (z *ZoomMachine) Exit() {
	if !z.active {
		return
	}
	z.dir = ZoomExiting
}

// ChangeFocusSequential slides the stage to newIndex animating every
// slot in between.
func (z *ZoomMachine) ChangeFocusSequential(newIndex int) {
	z.focused = newIndex
	z.stage.TransitionTo(newIndex)
}

// ChangeFocusJump slides the stage to newIndex animating only the two
// endpoint slots.
func (z *ZoomMachine) ChangeFocusJump(newIndex int) {
	z.focused = newIndex
	z.stage.JumpTo(newIndex)
}

// Advance drives progress toward 1 (entering) or 0 (exiting) and ticks
// the owned stage. Entering deliberately runs on a slowed clock so the
// grow-to-fullscreen reads as weighty; the exit plays back faster.
func (z *ZoomMachine) Advance(dt float64) {
	if !z.active {
		return
	}

	switch z.dir {
	case ZoomEntering:
		z.progress = Decay(z.progress, 1, zoomRate, dt*zoomEnterScale)
	case ZoomExiting:
		z.progress = Decay(z.progress, 0, zoomRate, dt*zoomExitScale)
		if z.progress < zoomDoneEpsilon {
			z.progress = 0
			z.active = false
			z.dir = ZoomIdle
		}
	}

	z.stage.Advance(dt)
}

// Active reports whether the zoom is presenting (entering, settled, or
// exiting).
func (z *ZoomMachine) Active() bool {
	return z.active
}

// Direction returns the current zoom direction.
func (z *ZoomMachine) Direction() ZoomDirection {
	return z.dir
}

// Focused returns the focused slot index.
func (z *ZoomMachine) Focused() int {
	return z.focused
}

// Progress returns the raw enter progress in [0, 1].
func (z *ZoomMachine) Progress() float64 {
	return z.progress
}

// Eased returns the cubic ease-out of progress, the interpolation factor
// rendering uses between the carousel rect and the fullscreen rect.
func (z *ZoomMachine) Eased() float64 {
	return CubicOut(z.progress)
}

// Stage exposes the owned stage machine.
func (z *ZoomMachine) Stage() *StageMachine {
	return z.stage
}

// IsActive reports whether the zoom or its stage still has motion.
func (z *ZoomMachine) IsActive() bool {
	if z.active && z.dir == ZoomEntering && z.progress < 1-zoomDoneEpsilon {
		return true
	}
	if z.active && z.dir == ZoomExiting {
		return true
	}
	return z.active && z.stage.IsActive()
}
