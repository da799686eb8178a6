package galleria

// Viewport is the explicit rendering context refreshed once per tick and
// passed to every layout and render call. Nothing in the package reads
// ambient window state directly.
type Viewport struct {
	Width  float64
	Height float64
	// DPR is the device pixel ratio; logical layout coordinates times DPR
	// give physical surface pixels.
	DPR float64
}

// AspectRatio returns width over height, or 1 for a degenerate viewport.
func (v Viewport) AspectRatio() float64 {
	if v.Height <= 0 {
		return 1
	}
	return v.Width / v.Height
}

const thumbRowMargin = 24.0 // logical pixels from the right/bottom edges

// Layout derives every rectangle in the system from the current viewport
// and the configured slot metrics. Dimensions left at zero in the config
// are responsive: re-derived from the viewport on every SetViewport.
type Layout struct {
	vp    Viewport
	count int

	cfgSlotWidth  float64 // 0 = responsive
	cfgThumbWidth float64 // 0 = responsive

	SlotWidth  float64
	SlotGap    float64
	ThumbWidth float64
	ThumbGap   float64
}

// NewLayout builds a layout for count slots from the validated config.
func NewLayout(cfg Config, count int, vp Viewport) *Layout {
	l := &Layout{
		count:         count,
		cfgSlotWidth:  cfg.SlotWidth,
		cfgThumbWidth: cfg.ThumbWidth,
		SlotGap:       cfg.SlotGap,
		ThumbGap:      cfg.ThumbGap,
	}
	l.SetViewport(vp)
	return l
}

// SetViewport installs the viewport for this tick and re-derives the
// responsive dimensions.
func (l *Layout) SetViewport(vp Viewport) {
	l.vp = vp
	if l.cfgSlotWidth > 0 {
		l.SlotWidth = l.cfgSlotWidth
	} else {
		l.SlotWidth = vp.Width * 0.36
	}
	if l.cfgThumbWidth > 0 {
		l.ThumbWidth = l.cfgThumbWidth
	} else {
		l.ThumbWidth = vp.Width * 0.055
	}
}

// Viewport returns the viewport installed for this tick.
func (l *Layout) Viewport() Viewport {
	return l.vp
}

// SlotSpan is the horizontal distance between adjacent slot centers.
func (l *Layout) SlotSpan() float64 {
	return l.SlotWidth + l.SlotGap
}

// ScrollBounds returns the scroll range: zero when slot 0 is centered,
// up to the offset that centers the last slot.
func (l *Layout) ScrollBounds() (minScroll, maxScroll float64) {
	if l.count <= 1 {
		return 0, 0
	}
	return 0, float64(l.count-1) * l.SlotSpan()
}

// CenterScrollFor returns the scroll position that centers slot i.
func (l *Layout) CenterScrollFor(i int) float64 {
	return float64(i) * l.SlotSpan()
}

// SlotRect returns slot i's inline carousel rectangle for the given
// (smoothed) scroll position. Slots sit in a horizontal row, vertically
// centered, each sized by its own aspect ratio at the shared slot width.
func (l *Layout) SlotRect(i int, scroll, aspect float64) Rect {
	if aspect <= 0 {
		aspect = 1
	}
	w := l.SlotWidth
	h := w / aspect
	x := l.vp.Width/2 - w/2 + float64(i)*l.SlotSpan() - scroll
	y := l.vp.Height/2 - h/2
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// CoverRect returns the fullscreen rectangle for an image of the given
// aspect ratio: the smallest rect that covers the whole viewport while
// preserving aspect (no letterboxing), centered.
func (l *Layout) CoverRect(aspect float64) Rect {
	if aspect <= 0 {
		aspect = 1
	}
	var w, h float64
	if l.vp.AspectRatio() > aspect {
		w = l.vp.Width
		h = w / aspect
	} else {
		h = l.vp.Height
		w = h * aspect
	}
	return Rect{
		X:      l.vp.Width/2 - w/2,
		Y:      l.vp.Height/2 - h/2,
		Width:  w,
		Height: h,
	}
}

// ThumbRect returns thumbnail i's rectangle in the strip: a row of
// fixed-width thumbnails anchored to the viewport's right and bottom
// edges, spaced by ThumbGap, each thumbnail's height derived from its
// own aspect ratio.
func (l *Layout) ThumbRect(i int, aspect float64) Rect {
	if aspect <= 0 {
		aspect = 1
	}
	w := l.ThumbWidth
	h := w / aspect
	rowWidth := float64(l.count)*w + float64(l.count-1)*l.ThumbGap
	startX := l.vp.Width - thumbRowMargin - rowWidth
	x := startX + float64(i)*(w+l.ThumbGap)
	y := l.vp.Height - thumbRowMargin - h
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// SlotAt returns the index of the slot whose inline rectangle contains
// (x, y) at the given scroll position, or -1 if none. aspects holds each
// slot's aspect ratio.
func (l *Layout) SlotAt(x, y, scroll float64, aspects []float64) int {
	for i := 0; i < l.count && i < len(aspects); i++ {
		if l.SlotRect(i, scroll, aspects[i]).Contains(x, y) {
			return i
		}
	}
	return -1
}

// ThumbAt returns the index of the thumbnail containing (x, y), or -1.
func (l *Layout) ThumbAt(x, y float64, aspects []float64) int {
	for i := 0; i < l.count && i < len(aspects); i++ {
		if l.ThumbRect(i, aspects[i]).Contains(x, y) {
			return i
		}
	}
	return -1
}
