package galleria

import (
	"errors"
	"math"
	"testing"
)

var testViewport = Viewport{Width: 1280, Height: 720, DPR: 1}

func newTestCarousel(t *testing.T, count int, cb Callbacks) *Carousel {
	t.Helper()
	slots := make([]Slot, count)
	for i := range slots {
		slots[i] = Slot{Aspect: 1, Title: "slot"}
	}
	cfg := Config{Sources: []string{"unused"}}.withDefaults()
	c := newFromSlots(cfg, slots, cb)
	c.Tick(1, testViewport) // install the real viewport
	return c
}

func tickN(c *Carousel, n int) {
	for i := 0; i < n; i++ {
		c.Tick(1, testViewport)
	}
}

// slotCenterX returns the x coordinate of slot i's center at scroll 0.
func slotCenterX(c *Carousel, i int) float64 {
	return testViewport.Width/2 + float64(i)*c.layout.SlotSpan()
}

func TestCarouselClickEntersZoom(t *testing.T) {
	entered := -1
	c := newTestCarousel(t, 3, Callbacks{
		OnZoomEnter: func(i int) { entered = i },
	})

	// Slot 1 sits one span right of center at scroll 0.
	c.PointerDown(slotCenterX(c, 1), 360)
	c.PointerUp(slotCenterX(c, 1), 360)

	if !c.zoom.Active() || c.zoom.Focused() != 1 {
		t.Fatalf("zoom active=%v focused=%d, want active on 1", c.zoom.Active(), c.zoom.Focused())
	}
	if c.Mode() != ModeEnteringZoom {
		t.Errorf("mode = %v, want entering", c.Mode())
	}
	if c.slider.Mode() != SliderToMini {
		t.Error("mini-slider should be transitioning to the thumbnail strip")
	}
	if c.title.Focused() != 1 || !c.title.Entering() {
		t.Error("title reveal for slot 1 should be in flight")
	}
	if entered != 1 {
		t.Errorf("OnZoomEnter fired with %d, want 1", entered)
	}

	tickN(c, 600)
	if c.Mode() != ModeZoomed {
		t.Errorf("mode = %v after settling, want zoomed", c.Mode())
	}
	if c.reticle.CenterVisible() || !c.reticle.SidesVisible() {
		t.Error("zoomed reticle shows the side markers, not the center")
	}
	if got := c.scroll.Position; got != c.layout.CenterScrollFor(1) {
		t.Errorf("scroll = %f, want snapped to %f", got, c.layout.CenterScrollFor(1))
	}
	if c.CurrentIndex() != 1 {
		t.Errorf("CurrentIndex = %d, want 1", c.CurrentIndex())
	}
}

func TestCarouselDragExitsZoomAndSettles(t *testing.T) {
	exited := -1
	c := newTestCarousel(t, 3, Callbacks{
		OnZoomExit: func(i int) { exited = i },
	})
	c.PointerDown(slotCenterX(c, 1), 360)
	c.PointerUp(slotCenterX(c, 1), 360)
	tickN(c, 600)

	// Any drag past the threshold while zoomed begins the exit.
	c.PointerDown(640, 360)
	c.PointerMove(600, 360)

	if c.Mode() != ModeExitingZoom {
		t.Fatalf("mode = %v, want exiting", c.Mode())
	}
	if c.zoom.Direction() != ZoomExiting {
		t.Error("zoom machine should be exiting")
	}
	if c.slider.Mode() != SliderToSlider {
		t.Error("mini-slider should be returning to the carousel")
	}
	if !c.title.Exiting() {
		t.Error("title should be hiding")
	}
	if exited != 1 {
		t.Errorf("OnZoomExit fired with %d, want 1", exited)
	}
	c.PointerUp(600, 360)

	// Run to rest: every machine idle, carousel centered on the slot that
	// was focused.
	tickN(c, 600)
	if c.Mode() != ModeCarousel {
		t.Errorf("mode = %v after exit settles, want carousel", c.Mode())
	}
	if c.zoom.Active() {
		t.Error("zoom should be inactive")
	}
	if c.slider.Mode() != SliderInactive {
		t.Error("mini-slider state should be force-cleared once the zoom ends")
	}
	if !c.reticle.CenterVisible() || c.reticle.SidesVisible() {
		t.Error("inline reticle shows the center marker only")
	}
	if c.title.Focused() != -1 {
		t.Error("no title should remain assigned")
	}
	if got := c.scroll.Position; math.Abs(got-c.layout.CenterScrollFor(1)) > 0.5 {
		t.Errorf("scroll = %f, want centered on slot 1 at %f", got, c.layout.CenterScrollFor(1))
	}
}

func TestCarouselWheelExitsZoom(t *testing.T) {
	c := newTestCarousel(t, 3, Callbacks{})
	c.PointerDown(640, 360)
	c.PointerUp(640, 360)
	tickN(c, 600)

	c.Wheel(0, 5) // under the threshold: ignored
	if c.Mode() != ModeZoomed {
		t.Fatal("sub-threshold wheel must not exit the zoom")
	}
	c.Wheel(0, 30)
	if c.Mode() != ModeExitingZoom {
		t.Error("wheel past the threshold should exit the zoom")
	}
}

func TestCarouselWheelScrollsInline(t *testing.T) {
	c := newTestCarousel(t, 5, Callbacks{})
	c.Wheel(0, 40)
	c.Tick(1, testViewport)
	if c.scroll.Position <= 0 {
		t.Errorf("position = %f after positive wheel, want > 0", c.scroll.Position)
	}

	// The dominant axis wins: a mostly-horizontal wheel uses dx.
	d := newTestCarousel(t, 5, Callbacks{})
	d.Wheel(40, -3)
	d.Tick(1, testViewport)
	if d.scroll.Position <= 0 {
		t.Errorf("position = %f, want dx to dominate", d.scroll.Position)
	}
}

func TestCarouselDragThrowsInline(t *testing.T) {
	c := newTestCarousel(t, 5, Callbacks{})
	c.PointerDown(640, 360)
	c.PointerMove(600, 360) // leftward drag scrolls content forward
	c.PointerUp(600, 360)

	c.Tick(1, testViewport)
	if c.scroll.Position <= 0 {
		t.Errorf("position = %f after leftward drag, want > 0", c.scroll.Position)
	}
	if c.zoom.Active() {
		t.Error("a drag is not a click; nothing should zoom")
	}
}

func TestCarouselSubThresholdMoveStillClicks(t *testing.T) {
	c := newTestCarousel(t, 3, Callbacks{})
	c.PointerDown(640, 360)
	c.PointerMove(642, 361) // within the 6px default threshold
	c.PointerUp(642, 361)
	if !c.zoom.Active() {
		t.Error("a sub-threshold wobble should still count as a click")
	}
}

func TestCarouselKeySeeksInline(t *testing.T) {
	c := newTestCarousel(t, 3, Callbacks{})
	c.Key(1)
	tickN(c, 600)
	if got := c.scroll.Position; got != c.layout.CenterScrollFor(1) {
		t.Errorf("scroll = %f, want %f", got, c.layout.CenterScrollFor(1))
	}
	if c.CurrentIndex() != 1 {
		t.Errorf("CurrentIndex = %d, want 1", c.CurrentIndex())
	}

	// Keying past the last slot is ignored.
	c.Key(1)
	tickN(c, 600)
	c.Key(1)
	tickN(c, 600)
	if c.CurrentIndex() != 2 {
		t.Errorf("CurrentIndex = %d, want clamped at 2", c.CurrentIndex())
	}
}

func TestCarouselKeySlidesWhileZoomed(t *testing.T) {
	from, to := -1, -1
	c := newTestCarousel(t, 3, Callbacks{
		OnSlide: func(f, n int) { from, to = f, n },
	})
	c.PointerDown(640, 360)
	c.PointerUp(640, 360)
	tickN(c, 600)

	c.Key(1)
	if from != 0 || to != 1 {
		t.Errorf("OnSlide(%d, %d), want (0, 1)", from, to)
	}
	if c.zoom.Focused() != 1 {
		t.Errorf("focused = %d, want 1", c.zoom.Focused())
	}
	if !c.title.Exiting() {
		t.Error("old title should be hiding")
	}

	tickN(c, 600)
	if c.title.Focused() != 1 || c.title.Offset() != 0 {
		t.Error("queued title for slot 1 should be fully shown")
	}
	if math.Abs(c.reticle.SidesRotation()-reticleQuarterTurn) > 0.01 {
		t.Errorf("side rotation = %f, want a quarter turn", c.reticle.SidesRotation())
	}
}

func TestCarouselEdgeClickSlidesWhileZoomed(t *testing.T) {
	c := newTestCarousel(t, 3, Callbacks{})
	c.PointerDown(slotCenterX(c, 1), 360)
	c.PointerUp(slotCenterX(c, 1), 360)
	tickN(c, 600)

	// Left quarter of the screen slides back.
	c.PointerDown(100, 360)
	c.PointerUp(100, 360)
	if c.zoom.Focused() != 0 {
		t.Errorf("focused = %d after left-edge click, want 0", c.zoom.Focused())
	}
}

func TestCarouselThumbClickJumps(t *testing.T) {
	from, to := -1, -1
	c := newTestCarousel(t, 4, Callbacks{
		OnSlide: func(f, n int) { from, to = f, n },
	})
	c.PointerDown(640, 360)
	c.PointerUp(640, 360)
	tickN(c, 600)

	thumb := c.layout.ThumbRect(3, 1).Center()
	c.PointerDown(thumb.X, thumb.Y)
	c.PointerUp(thumb.X, thumb.Y)

	if c.zoom.Focused() != 3 {
		t.Fatalf("focused = %d after thumb click, want 3", c.zoom.Focused())
	}
	if from != 0 || to != 3 {
		t.Errorf("OnSlide(%d, %d), want (0, 3)", from, to)
	}
	// Jump policy: the stage slots between the endpoints are already in
	// place.
	img, _ := c.zoom.Stage().Offsets(1)
	target, _ := c.zoom.Stage().Targets(1)
	if img != target {
		t.Error("intermediate stage slots should snap on a jump")
	}
}

func TestCarouselClicksIgnoredWhileEntering(t *testing.T) {
	c := newTestCarousel(t, 3, Callbacks{})
	c.PointerDown(640, 360)
	c.PointerUp(640, 360)
	tickN(c, 3) // still entering

	if c.Mode() != ModeEnteringZoom {
		t.Fatal("zoom entrance should still be playing")
	}
	c.PointerDown(100, 360)
	c.PointerUp(100, 360)
	if c.zoom.Focused() != 0 {
		t.Error("clicks during the zoom entrance must be ignored")
	}
}

func TestCarouselEnterAt(t *testing.T) {
	c := newTestCarousel(t, 3, Callbacks{})

	if err := c.EnterAt(7); !errors.Is(err, ErrInvalidIndex) {
		t.Fatalf("EnterAt(7) = %v, want ErrInvalidIndex", err)
	}
	if c.zoom.Active() {
		t.Fatal("invalid EnterAt must not change state")
	}

	if err := c.EnterAt(2); err != nil {
		t.Fatalf("EnterAt(2): %v", err)
	}
	if !c.zoom.Active() || c.zoom.Focused() != 2 {
		t.Error("EnterAt should zoom the requested slot")
	}

	// While zoomed, EnterAt jumps focus.
	tickN(c, 600)
	if err := c.EnterAt(0); err != nil {
		t.Fatalf("EnterAt(0): %v", err)
	}
	if c.zoom.Focused() != 0 {
		t.Errorf("focused = %d, want jumped to 0", c.zoom.Focused())
	}
}

func TestCarouselDisableZoomCentersOnly(t *testing.T) {
	slots := []Slot{{Aspect: 1}, {Aspect: 1}, {Aspect: 1}}
	cfg := Config{Sources: []string{"unused"}, DisableZoom: true}.withDefaults()
	c := newFromSlots(cfg, slots, Callbacks{})
	c.Tick(1, testViewport)

	c.PointerDown(slotCenterX(c, 1), 360)
	c.PointerUp(slotCenterX(c, 1), 360)
	if c.zoom.Active() {
		t.Fatal("zoom is disabled; clicks must not zoom")
	}
	tickN(c, 600)
	if got := c.scroll.Position; got != c.layout.CenterScrollFor(1) {
		t.Errorf("scroll = %f, want the clicked slot centered at %f", got, c.layout.CenterScrollFor(1))
	}
}

func TestCarouselClickVeto(t *testing.T) {
	c := newTestCarousel(t, 3, Callbacks{
		OnClickSlot: func(int) bool { return false },
	})
	c.PointerDown(640, 360)
	c.PointerUp(640, 360)
	if c.zoom.Active() || c.scroll.Seeking() {
		t.Error("a vetoed click must change nothing")
	}
}

func TestCarouselReconfigure(t *testing.T) {
	c := newTestCarousel(t, 3, Callbacks{})

	if err := c.Reconfigure(Config{Sources: []string{"x.png"}}); err == nil {
		t.Error("reconfiguring sources must be rejected")
	}
	if err := c.Reconfigure(Config{CounterStyle: "bounce"}); err == nil {
		t.Error("invalid merged config must be rejected")
	}

	if err := c.Reconfigure(Config{SlotGap: 60}); err != nil {
		t.Fatalf("Reconfigure: %v", err)
	}
	if c.layout.SlotGap != 60 {
		t.Errorf("slot gap = %f, want 60", c.layout.SlotGap)
	}
	// The replaced slider must be the one ticked afterward.
	c.EnterAt(0)
	c.Tick(1, testViewport)
	if c.slider.Progress() == 0 {
		t.Error("reconfigured slider is not being advanced")
	}
}

func TestCarouselTeardown(t *testing.T) {
	calls := 0
	c := newTestCarousel(t, 3, Callbacks{
		OnTeardown: func() { calls++ },
	})
	c.Teardown()
	c.Teardown()
	if calls != 1 {
		t.Errorf("OnTeardown fired %d times, want once", calls)
	}

	// Everything is inert afterward.
	c.PointerDown(640, 360)
	c.PointerUp(640, 360)
	c.Wheel(0, 100)
	c.Key(1)
	c.Tick(1, testViewport)
	if c.zoom.Active() || c.scroll.Position != 0 {
		t.Error("a torn-down carousel must ignore input and ticks")
	}
}

func TestCarouselResizeRebounds(t *testing.T) {
	c := newTestCarousel(t, 5, Callbacks{})
	c.scroll.SeekTo(c.layout.CenterScrollFor(4))
	tickN(c, 600)
	wide := c.scroll.Position

	// Halving the viewport shrinks the responsive span; the position is
	// re-clamped into the new bounds every tick.
	small := Viewport{Width: 640, Height: 360, DPR: 1}
	c.Tick(1, small)
	_, maxScroll := c.layout.ScrollBounds()
	if c.scroll.Position > maxScroll {
		t.Errorf("position %f exceeds new max %f after resize", c.scroll.Position, maxScroll)
	}
	if maxScroll >= wide {
		t.Errorf("max scroll %f should shrink below the old position %f", maxScroll, wide)
	}
}

func TestCarouselCounterTracksScroll(t *testing.T) {
	c := newTestCarousel(t, 4, Callbacks{})
	c.scroll.SeekTo(c.layout.CenterScrollFor(2))
	tickN(c, 600)
	if c.counter.Target() != 2 || c.counter.Current() != 2 {
		t.Errorf("counter target=%d current=%d, want settled at 2", c.counter.Target(), c.counter.Current())
	}
}
