package galleria

import (
	"fmt"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	dragVelocityScale  = 0.4  // carousel velocity per dragged pixel
	wheelVelocityScale = 0.25 // carousel velocity per wheel-delta unit
	zoomSettledAt      = 0.98
)

// Callbacks is the surface the embedding application hooks into.
// Every field is optional.
type Callbacks struct {
	// OnClickSlot fires before a click zooms a slot; returning false
	// vetoes the zoom entry.
	OnClickSlot func(index int) bool
	OnZoomEnter func(index int)
	OnZoomExit  func(index int)
	OnSlide     func(from, to int)
	OnReady     func()
	OnTeardown  func()
}

// Carousel is the orchestrator: it owns the slots and every animation
// machine, interprets input events into mode transitions, and enforces
// the cross-trigger contract between the machines. All machine mutation
// happens here, either in an input handler or in Tick; the machines
// never reach into each other.
type Carousel struct {
	cfg       Config
	callbacks Callbacks

	arena  *slotArena
	layout *Layout
	clock  *Clock

	scroll  *ScrollPhysics
	zoom    *ZoomMachine
	slider  *MiniSliderMachine
	reticle *ReticleSystem
	title   *TitleMachine
	counter *CounterMachine

	// machines is the generic tick list; entry points stay on the
	// concrete fields above.
	machines []Machine

	mode Mode

	// Rect snapshots captured at the §4.9 trigger points; the renderer
	// interpolates strip items from these toward their targets.
	miniStart   []Rect
	sliderStart []Rect

	// Pointer gesture state.
	pointerHeld bool
	dragging    bool
	startX      float64
	startY      float64
	lastX       float64
	lastY       float64

	injectQueue []syntheticEvent
	gestures    *GestureRunner

	// Offscreen digit buffers for the index counter, created lazily on
	// the first Draw.
	counterOut *ebiten.Image
	counterIn  *ebiten.Image

	torn  bool
	debug bool
}

// New validates cfg, loads every source concurrently, and constructs the
// carousel. Items that fail to decode are dropped and the sequence
// renumbered; an empty surviving sequence is a ConfigurationError.
func New(cfg Config, callbacks ...Callbacks) (*Carousel, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	slots := loadSlots(cfg.Sources, cfg.Titles)
	if len(slots) == 0 {
		return nil, &ConfigurationError{Field: "sources", Reason: "no item could be loaded"}
	}

	var cb Callbacks
	if len(callbacks) > 0 {
		cb = callbacks[0]
	}
	c := newFromSlots(cfg, slots, cb)
	if c.callbacks.OnReady != nil {
		c.callbacks.OnReady()
	}
	return c, nil
}

// NewFromSlots constructs a carousel from already-decoded images,
// bypassing the file loader. Useful when the embedding application owns
// asset loading (atlases, embedded files, generated images).
func NewFromSlots(cfg Config, slots []Slot, callbacks ...Callbacks) (*Carousel, error) {
	cfg = cfg.withDefaults()
	if len(slots) == 0 {
		return nil, &ConfigurationError{Field: "slots", Reason: "empty item list"}
	}
	if _, err := cfg.counterStyle(); err != nil {
		return nil, err
	}
	var cb Callbacks
	if len(callbacks) > 0 {
		cb = callbacks[0]
	}
	c := newFromSlots(cfg, slots, cb)
	if c.callbacks.OnReady != nil {
		c.callbacks.OnReady()
	}
	return c, nil
}

// newFromSlots wires the machines for an already-decoded slot set.
// Tests use it directly to avoid file IO.
func newFromSlots(cfg Config, slots []Slot, cb Callbacks) *Carousel {
	style, _ := cfg.counterStyle() // validated earlier
	arena := newSlotArena(slots)
	vp := Viewport{Width: 1280, Height: 720, DPR: 1}
	layout := NewLayout(cfg, arena.len(), vp)
	minS, maxS := layout.ScrollBounds()

	c := &Carousel{
		cfg:         cfg,
		callbacks:   cb,
		arena:       arena,
		layout:      layout,
		clock:       NewClock(),
		scroll:      NewScrollPhysics(minS, maxS),
		zoom:        NewZoomMachine(arena.len()),
		slider:      NewMiniSliderMachine(arena.len(), cfg.StaggerStrength),
		reticle:     NewReticleSystem(2, 4),
		title:       NewTitleMachine(),
		counter:     NewCounterMachine(style, arena.len(), layout.SlotWidth, layout.SlotGap),
		miniStart:   make([]Rect, arena.len()),
		sliderStart: make([]Rect, arena.len()),
		mode:        ModeCarousel,
	}
	c.machines = []Machine{c.zoom, c.slider, c.reticle, c.title, c.counter}
	return c
}

// Mode returns the orchestrator's current presentation state.
func (c *Carousel) Mode() Mode {
	return c.mode
}

// CurrentIndex returns the focused slot while zoomed, otherwise the slot
// nearest the carousel center.
func (c *Carousel) CurrentIndex() int {
	if c.zoom.Active() {
		return c.zoom.Focused()
	}
	return c.counter.Target()
}

// Len returns the number of loadable slots.
func (c *Carousel) Len() int {
	return c.arena.len()
}

// SetDebugMode enables per-tick stats logging to stderr.
func (c *Carousel) SetDebugMode(enabled bool) {
	c.debug = enabled
}

// EnterAt programmatically navigates to index: zooming it when the zoom
// feature is enabled, otherwise centering it inline. An out-of-range
// index is logged and ignored.
func (c *Carousel) EnterAt(index int) error {
	if !c.arena.valid(index) {
		c.warnInvalidIndex("EnterAt", index)
		return ErrInvalidIndex
	}
	switch {
	case c.zoom.Active() && c.mode != ModeExitingZoom && index != c.zoom.Focused():
		c.jumpFocus(index)
	case !c.zoom.Active():
		c.activateSlot(index)
	}
	return nil
}

// Reconfigure merges partial over the current configuration and
// re-derives the responsive dimensions. The slot sequence is immutable;
// supplying new sources is rejected.
func (c *Carousel) Reconfigure(partial Config) error {
	if len(partial.Sources) > 0 {
		return &ConfigurationError{Field: "sources", Reason: "sequence cannot be reconfigured; create a new Carousel"}
	}
	merged := c.cfg.merge(partial)
	if err := merged.validate(); err != nil {
		return err
	}
	c.cfg = merged
	c.layout = NewLayout(merged, c.arena.len(), c.layout.Viewport())
	c.scroll.SetBounds(c.layout.ScrollBounds())
	c.counter.SetSlotMetrics(c.layout.SlotWidth, c.layout.SlotGap)
	c.slider = NewMiniSliderMachine(c.arena.len(), merged.StaggerStrength)
	c.machines[1] = c.slider
	return nil
}

// Teardown stops the carousel deterministically. Calling it twice is a
// no-op.
func (c *Carousel) Teardown() {
	if c.torn {
		return
	}
	c.torn = true
	if c.callbacks.OnTeardown != nil {
		c.callbacks.OnTeardown()
	}
}

func (c *Carousel) warnInvalidIndex(op string, index int) {
	fmt.Fprintf(os.Stderr, "[galleria] %s(%d): %v (have %d slots)\n",
		op, index, ErrInvalidIndex, c.arena.len())
}

// --- Pointer / wheel / key events ---

// PointerDown begins a pointer gesture at logical coordinates (x, y).
func (c *Carousel) PointerDown(x, y float64) {
	if c.torn {
		return
	}
	c.pointerHeld = true
	c.dragging = false
	c.startX, c.startY = x, y
	c.lastX, c.lastY = x, y
}

// PointerMove continues a gesture. Once movement exceeds the drag
// threshold the gesture becomes a drag: inline it throws the carousel,
// zoomed it begins the zoom exit.
func (c *Carousel) PointerMove(x, y float64) {
	if c.torn || !c.pointerHeld {
		return
	}
	dx := x - c.lastX
	c.lastX, c.lastY = x, y

	if !c.dragging {
		tx := x - c.startX
		ty := y - c.startY
		if math.Sqrt(tx*tx+ty*ty) > c.cfg.DragThreshold {
			c.dragging = true
		}
	}
	if !c.dragging {
		return
	}

	if c.zoom.Active() {
		if c.mode != ModeExitingZoom {
			c.exitZoom()
		}
		return
	}
	c.scroll.AddVelocity(-dx * dragVelocityScale)
}

// PointerUp ends a gesture; a release without a drag is a click.
func (c *Carousel) PointerUp(x, y float64) {
	if c.torn || !c.pointerHeld {
		return
	}
	wasDrag := c.dragging
	c.pointerHeld = false
	c.dragging = false
	if !wasDrag {
		c.click(x, y)
	}
}

// Wheel feeds a wheel delta. Inline it scrolls the carousel; while
// zoomed a delta past the threshold exits the zoom.
func (c *Carousel) Wheel(dx, dy float64) {
	if c.torn {
		return
	}
	delta := dy
	if math.Abs(dx) > math.Abs(dy) {
		delta = dx
	}

	if c.zoom.Active() {
		if c.mode != ModeExitingZoom && math.Abs(delta) > c.cfg.WheelThreshold {
			c.exitZoom()
		}
		return
	}
	c.scroll.AddVelocity(delta * wheelVelocityScale)
}

// Key feeds a directional key press: -1 for left/previous, +1 for
// right/next.
func (c *Carousel) Key(direction int) {
	if c.torn || direction == 0 {
		return
	}
	if c.zoom.Active() {
		if c.mode != ModeExitingZoom {
			c.slideBy(direction)
		}
		return
	}
	next := c.counter.Target() + direction
	if !c.arena.valid(next) {
		return
	}
	c.scroll.SeekTo(c.layout.CenterScrollFor(next))
}

// click resolves a pointer release without drag. Clicks are ignored
// while the zoom entrance is still playing.
func (c *Carousel) click(x, y float64) {
	if c.mode == ModeEnteringZoom {
		return
	}

	if c.zoom.Active() {
		if c.mode == ModeExitingZoom {
			return
		}
		if i := c.layout.ThumbAt(x, y, c.arena.aspects); i >= 0 && i != c.zoom.Focused() {
			c.jumpFocus(i)
			return
		}
		// Edge clicks slide sequentially, like the arrow keys.
		switch {
		case x < c.layout.Viewport().Width*0.25:
			c.slideBy(-1)
		case x > c.layout.Viewport().Width*0.75:
			c.slideBy(1)
		}
		return
	}

	i := c.layout.SlotAt(x, y, c.scroll.Smoothed, c.arena.aspects)
	if i < 0 {
		return
	}
	c.activateSlot(i)
}

// activateSlot runs the click-on-unzoomed-slot contract: center the
// slot, then (unless vetoed or disabled) enter the zoom, snapshot the
// strip, start the mini transition, reveal the title, and reset the
// reticle rotation, in exactly that order.
func (c *Carousel) activateSlot(index int) {
	if c.callbacks.OnClickSlot != nil && !c.callbacks.OnClickSlot(index) {
		return
	}
	c.scroll.SeekTo(c.layout.CenterScrollFor(index))
	if c.cfg.DisableZoom {
		return
	}

	c.zoom.Enter(index)
	c.captureStripRects(c.miniStart)
	c.slider.ToMini(index)
	c.title.Show(index)
	c.reticle.ResetRotation()
	c.mode = ModeEnteringZoom
	if c.callbacks.OnZoomEnter != nil {
		c.callbacks.OnZoomEnter(index)
	}
}

// exitZoom runs the zoomed-drag/wheel contract: start the zoom exit,
// snapshot the strip as the toSlider start, reverse the mini transition,
// and hide the title.
func (c *Carousel) exitZoom() {
	focused := c.zoom.Focused()
	c.zoom.Exit()
	c.captureStripRects(c.sliderStart)
	c.slider.ToSlider()
	c.title.Hide()
	c.scroll.SeekTo(c.layout.CenterScrollFor(focused))
	c.mode = ModeExitingZoom
	if c.callbacks.OnZoomExit != nil {
		c.callbacks.OnZoomExit(focused)
	}
}

// jumpFocus runs the click-on-a-different-slot-while-zoomed contract:
// the stage jumps (only the endpoints animate) and the queued title
// takes over once the old one is out.
func (c *Carousel) jumpFocus(newIndex int) {
	from := c.zoom.Focused()
	c.title.Hide()
	if newIndex > from {
		c.reticle.RotateSides(1)
	} else {
		c.reticle.RotateSides(-1)
	}
	c.zoom.ChangeFocusJump(newIndex)
	c.scroll.SeekTo(c.layout.CenterScrollFor(newIndex))
	c.title.SetNextTitle(newIndex)
	if c.callbacks.OnSlide != nil {
		c.callbacks.OnSlide(from, newIndex)
	}
}

// slideBy runs the directional-key/edge-click contract: a sequential
// stage transition to the adjacent slot.
func (c *Carousel) slideBy(direction int) {
	from := c.zoom.Focused()
	next := from + direction
	if !c.arena.valid(next) {
		c.warnInvalidIndex("slide", next)
		return
	}
	c.title.Hide()
	c.zoom.ChangeFocusSequential(next)
	c.scroll.SeekTo(c.layout.CenterScrollFor(next))
	c.title.SetNextTitle(next)
	c.reticle.RotateSides(direction)
	if c.callbacks.OnSlide != nil {
		c.callbacks.OnSlide(from, next)
	}
}

// --- Per-tick advancement ---

// Tick advances the whole system by one frame: scroll physics first,
// then every machine with the same elapsed time, then the coordination
// rules that are re-derived every tick rather than event-driven.
func (c *Carousel) Tick(dt float64, vp Viewport) {
	if c.torn {
		return
	}

	c.layout.SetViewport(vp)
	c.scroll.SetBounds(c.layout.ScrollBounds())
	c.counter.SetSlotMetrics(c.layout.SlotWidth, c.layout.SlotGap)

	c.scroll.Advance(dt)
	for _, m := range c.machines {
		m.Advance(dt)
	}
	c.counter.TrackScroll(c.scroll.Position)

	// Mode follows the zoom machine.
	switch c.mode {
	case ModeEnteringZoom:
		if c.zoom.Progress() >= zoomSettledAt {
			c.mode = ModeZoomed
		}
	case ModeExitingZoom:
		if !c.zoom.Active() {
			c.mode = ModeCarousel
		}
	}

	// Stale stagger state must not leak into the next zoom.
	if !c.zoom.Active() && c.slider.Mode() != SliderInactive {
		c.slider.ForceInactive()
	}

	// The reticle mode is a pure function of the slider mode, re-derived
	// every tick so it self-heals if an event was missed.
	switch c.slider.Mode() {
	case SliderToMini:
		if !c.reticle.SidesEntering() {
			c.reticle.HideCenter()
		}
	case SliderToSlider:
		if !c.reticle.CenterEntering() {
			c.reticle.ShowCenter()
		}
	}
}

// captureStripRects snapshots the rect every slot is currently rendered
// at into dst. These are the interpolation starting points for the next
// mini-slider phase.
func (c *Carousel) captureStripRects(dst []Rect) {
	for i := 0; i < c.arena.len(); i++ {
		dst[i] = c.stripRect(i)
	}
}

// stripRect returns the rectangle slot i occupies in the strip right
// now, under whatever transition is in flight.
func (c *Carousel) stripRect(i int) Rect {
	aspect := c.arena.aspects[i]
	inline := c.layout.SlotRect(i, c.scroll.Smoothed, aspect)
	thumb := c.layout.ThumbRect(i, aspect)

	switch c.slider.Mode() {
	case SliderToMini:
		p := c.slider.ItemProgress(i)
		return LerpRect(c.miniStart[i], thumb, CubicOut(p.Value))
	case SliderToSlider:
		p := c.slider.ItemProgress(i)
		if p.Phase == ItemRetreating {
			return LerpRect(c.miniStart[i], thumb, CubicOut(p.Value))
		}
		return LerpRect(c.sliderStart[i], inline, CubicOut(p.Value))
	default:
		return inline
	}
}
