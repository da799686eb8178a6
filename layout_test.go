package galleria

import (
	"math"
	"testing"
)

func testLayout(count int) *Layout {
	cfg := Config{SlotWidth: 300, ThumbWidth: 60, SlotGap: 20, ThumbGap: 10}
	return NewLayout(cfg, count, Viewport{Width: 1280, Height: 720, DPR: 1})
}

func TestLayoutSlotRectCentersAtScroll(t *testing.T) {
	l := testLayout(5)

	// With scroll centering slot 2, its rect is centered in the viewport.
	r := l.SlotRect(2, l.CenterScrollFor(2), 1.5)
	c := r.Center()
	if c.X != 640 || c.Y != 360 {
		t.Errorf("centered slot center = (%f, %f), want (640, 360)", c.X, c.Y)
	}
	if r.Width != 300 || r.Height != 200 {
		t.Errorf("slot rect %fx%f, want 300x200 for aspect 1.5", r.Width, r.Height)
	}

	// Neighbors sit one span to either side.
	left := l.SlotRect(1, l.CenterScrollFor(2), 1.5)
	if got := r.X - left.X; got != l.SlotSpan() {
		t.Errorf("adjacent slots %f apart, want span %f", got, l.SlotSpan())
	}
}

func TestLayoutScrollBounds(t *testing.T) {
	l := testLayout(5)
	minScroll, maxScroll := l.ScrollBounds()
	if minScroll != 0 {
		t.Errorf("min scroll = %f, want 0", minScroll)
	}
	if maxScroll != 4*l.SlotSpan() {
		t.Errorf("max scroll = %f, want %f", maxScroll, 4*l.SlotSpan())
	}

	single := testLayout(1)
	minScroll, maxScroll = single.ScrollBounds()
	if minScroll != 0 || maxScroll != 0 {
		t.Error("single-slot carousel must not scroll")
	}
}

func TestLayoutCoverRectFillsViewport(t *testing.T) {
	l := testLayout(3)

	// Wider than the viewport: height fills, width spills.
	wide := l.CoverRect(4.0)
	if wide.Height != 720 {
		t.Errorf("wide cover height = %f, want 720", wide.Height)
	}
	if wide.Width < 1280 {
		t.Errorf("wide cover width = %f, must cover the viewport", wide.Width)
	}

	// Taller than the viewport: width fills, height spills.
	tall := l.CoverRect(0.5)
	if tall.Width != 1280 {
		t.Errorf("tall cover width = %f, want 1280", tall.Width)
	}
	if tall.Height < 720 {
		t.Errorf("tall cover height = %f, must cover the viewport", tall.Height)
	}

	// Both are centered.
	if c := wide.Center(); c.X != 640 || c.Y != 360 {
		t.Errorf("cover rect center = (%f, %f), want (640, 360)", c.X, c.Y)
	}
}

func TestLayoutThumbRowAnchoredBottomRight(t *testing.T) {
	l := testLayout(4)
	last := l.ThumbRect(3, 1)
	if got := last.X + last.Width; got != 1280-thumbRowMargin {
		t.Errorf("last thumb right edge = %f, want %f", got, 1280-thumbRowMargin)
	}
	if got := last.Y + last.Height; got != 720-thumbRowMargin {
		t.Errorf("last thumb bottom edge = %f, want %f", got, 720-thumbRowMargin)
	}

	// Equal spacing along the row.
	a := l.ThumbRect(0, 1)
	b := l.ThumbRect(1, 1)
	if got := b.X - a.X; got != l.ThumbWidth+l.ThumbGap {
		t.Errorf("thumb spacing = %f, want %f", got, l.ThumbWidth+l.ThumbGap)
	}
}

func TestLayoutResponsiveDimensions(t *testing.T) {
	l := NewLayout(Config{SlotGap: 20, ThumbGap: 10}, 3, Viewport{Width: 1000, Height: 600, DPR: 1})
	if math.Abs(l.SlotWidth-360) > 1e-9 {
		t.Errorf("responsive slot width = %f, want 360 at viewport 1000", l.SlotWidth)
	}
	if math.Abs(l.ThumbWidth-55) > 1e-9 {
		t.Errorf("responsive thumb width = %f, want 55 at viewport 1000", l.ThumbWidth)
	}

	l.SetViewport(Viewport{Width: 500, Height: 600, DPR: 1})
	if math.Abs(l.SlotWidth-180) > 1e-9 {
		t.Errorf("slot width = %f after resize, want 180", l.SlotWidth)
	}
}

func TestLayoutFixedDimensionsSurviveResize(t *testing.T) {
	l := testLayout(3)
	l.SetViewport(Viewport{Width: 500, Height: 400, DPR: 2})
	if l.SlotWidth != 300 || l.ThumbWidth != 60 {
		t.Error("explicitly configured dimensions must not respond to resizes")
	}
}

func TestLayoutHitTesting(t *testing.T) {
	l := testLayout(3)
	aspects := []float64{1, 1, 1}
	scroll := l.CenterScrollFor(1)

	if got := l.SlotAt(640, 360, scroll, aspects); got != 1 {
		t.Errorf("SlotAt viewport center = %d, want 1", got)
	}
	if got := l.SlotAt(640, 10, scroll, aspects); got != -1 {
		t.Errorf("SlotAt above the row = %d, want -1", got)
	}

	thumb := l.ThumbRect(2, 1)
	c := thumb.Center()
	if got := l.ThumbAt(c.X, c.Y, aspects); got != 2 {
		t.Errorf("ThumbAt thumb 2 center = %d, want 2", got)
	}
	if got := l.ThumbAt(5, 5, aspects); got != -1 {
		t.Errorf("ThumbAt top-left corner = %d, want -1", got)
	}
}
