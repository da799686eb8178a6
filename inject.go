package galleria

// syntheticEvent is a single injected input event, consumed one per
// frame so multi-event gestures play out across frames exactly like
// hardware input would.
type syntheticEvent struct {
	kind    syntheticKind
	x, y    float64
	dx, dy  float64
	pressed bool
	dir     int
}

type syntheticKind uint8

const (
	synthPointer syntheticKind = iota
	synthWheel
	synthKey
)

// InjectPress queues a pointer press at logical coordinates (x, y).
func (c *Carousel) InjectPress(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticEvent{kind: synthPointer, x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use
// between InjectPress and InjectRelease to simulate a drag.
func (c *Carousel) InjectMove(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticEvent{kind: synthPointer, x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at (x, y).
func (c *Carousel) InjectRelease(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticEvent{kind: synthPointer, x: x, y: y})
}

// InjectClick queues a press followed by a release at the same
// coordinates. Consumes two frames.
func (c *Carousel) InjectClick(x, y float64) {
	c.InjectPress(x, y)
	c.InjectRelease(x, y)
}

// InjectDrag queues a full drag: press at (fromX, fromY), interpolated
// moves, and release at (toX, toY), consuming `frames` frames total
// (minimum 2).
func (c *Carousel) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	c.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		c.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	c.InjectRelease(toX, toY)
}

// InjectWheel queues a wheel delta.
func (c *Carousel) InjectWheel(dx, dy float64) {
	c.injectQueue = append(c.injectQueue, syntheticEvent{kind: synthWheel, dx: dx, dy: dy})
}

// InjectKey queues a directional key press (-1 left, +1 right).
func (c *Carousel) InjectKey(direction int) {
	c.injectQueue = append(c.injectQueue, syntheticEvent{kind: synthKey, dir: direction})
}

// processInjected pops one queued event and feeds it through the event
// methods. Returns true if an event was consumed (hardware input is
// skipped that frame).
func (c *Carousel) processInjected() bool {
	if len(c.injectQueue) == 0 {
		return false
	}
	evt := c.injectQueue[0]
	copy(c.injectQueue, c.injectQueue[1:])
	c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]

	switch evt.kind {
	case synthPointer:
		switch {
		case evt.pressed && !c.pointerHeld:
			c.PointerDown(evt.x, evt.y)
		case evt.pressed:
			c.PointerMove(evt.x, evt.y)
		default:
			c.PointerUp(evt.x, evt.y)
		}
	case synthWheel:
		c.Wheel(evt.dx, evt.dy)
	case synthKey:
		c.Key(evt.dir)
	}
	return true
}
