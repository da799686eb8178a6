package galleria

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// wheelUnit converts ebiten's wheel ticks into logical-pixel deltas
// comparable against Config.WheelThreshold.
const wheelUnit = 20.0

// readInput polls the real input devices and feeds them through the same
// event methods tests and injection use. Injected events take precedence
// over the hardware for that frame, mirroring how synthetic input works
// in the rest of the engine.
func (c *Carousel) readInput() {
	if c.processInjected() {
		return
	}

	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	switch {
	case pressed && !c.pointerHeld:
		c.PointerDown(x, y)
	case pressed:
		c.PointerMove(x, y)
	case c.pointerHeld:
		c.PointerUp(x, y)
	}

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		c.Wheel(wx*wheelUnit, wy*wheelUnit)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		c.Key(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		c.Key(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && c.zoom.Active() && c.mode != ModeExitingZoom {
		c.exitZoom()
	}
}

// viewportDebouncer settles window resizes before they reach the layout:
// the viewport only changes once the reported size has held still for
// debounceFrames consecutive ticks, so a live window drag does not
// re-derive responsive dimensions sixty times a second.
type viewportDebouncer struct {
	current Viewport
	pending Viewport
	stable  int
}

const debounceFrames = 12

func newViewportDebouncer(initial Viewport) *viewportDebouncer {
	return &viewportDebouncer{current: initial, pending: initial}
}

// observe feeds this frame's raw viewport and returns the settled one.
func (d *viewportDebouncer) observe(vp Viewport) Viewport {
	if vp == d.current {
		d.pending = vp
		d.stable = 0
		return d.current
	}
	if vp != d.pending {
		d.pending = vp
		d.stable = 0
		return d.current
	}
	d.stable++
	if d.stable >= debounceFrames {
		d.current = vp
		d.stable = 0
	}
	return d.current
}
