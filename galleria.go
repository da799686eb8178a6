package galleria

// Vec2 is a 2D vector used for positions, offsets, and sizes.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin
// at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the rectangle's center point.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// LerpRect interpolates between two rectangles. Centers and extents are
// interpolated independently so a growing rectangle also re-centers
// smoothly instead of pinning its top-left corner.
func LerpRect(from, to Rect, t float64) Rect {
	fc := from.Center()
	tc := to.Center()
	cx := Lerp(fc.X, tc.X, t)
	cy := Lerp(fc.Y, tc.Y, t)
	w := Lerp(from.Width, to.Width, t)
	h := Lerp(from.Height, to.Height, t)
	return Rect{X: cx - w/2, Y: cy - h/2, Width: w, Height: h}
}

// Color represents an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default foreground color.
var ColorWhite = Color{1, 1, 1, 1}

// Mode identifies the orchestrator's presentation state. It mirrors the
// zoom machine's direction but additionally gates input handling: clicks
// are ignored while the zoom entrance is still playing.
type Mode uint8

const (
	ModeCarousel     Mode = iota // inline carousel, no zoom
	ModeEnteringZoom             // zoom entrance in flight
	ModeZoomed                   // fullscreen, zoom settled
	ModeExitingZoom              // zoom exit in flight
)

// String returns the mode name for logs and tests.
func (m Mode) String() string {
	switch m {
	case ModeCarousel:
		return "carousel"
	case ModeEnteringZoom:
		return "enteringZoom"
	case ModeZoomed:
		return "zoomed"
	case ModeExitingZoom:
		return "exitingZoom"
	default:
		return "unknown"
	}
}
