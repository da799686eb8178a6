package galleria

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var backgroundColor = color.RGBA{R: 17, G: 17, B: 20, A: 255}

const (
	reticleArm        = 14.0 // logical pixels at full length
	reticleStroke     = 2.0
	reticleSideMargin = 36.0
	titleMarginX      = 48.0
	titleMarginY      = 64.0
	titleLineHeight   = 18.0
	counterMarginX    = 48.0
	counterMarginY    = 40.0
	counterLineHeight = 16.0
	counterImgW       = 96
	counterImgH       = 16
)

// Draw renders the carousel in its current state. It only reads the
// machines' current (never target) values; all mutation happens in Tick
// and the input handlers.
func (c *Carousel) Draw(screen *ebiten.Image) {
	if c.torn {
		return
	}
	screen.Fill(backgroundColor)

	if c.zoom.Active() {
		c.drawZoomed(screen)
		c.drawStrip(screen, c.zoom.Focused())
	} else {
		c.drawStrip(screen, -1)
	}

	c.drawReticle(screen)
	c.drawTitle(screen)
	c.drawCounter(screen)
}

// drawStrip renders every slot at its current strip rectangle, skipping
// the slot index given (the zoomed slot is drawn by drawZoomed).
func (c *Carousel) drawStrip(screen *ebiten.Image, skip int) {
	for i := 0; i < c.arena.len(); i++ {
		if i == skip {
			continue
		}
		r := c.stripRect(i)
		drawImageInRect(screen, c.arena.at(i).Bitmap, r)
	}
}

// drawZoomed renders the fullscreen presentation. While the stage is
// mid-transition every slot is drawn in stacked offset form, centered
// slot on top; otherwise only the focused slot is drawn, interpolated
// between its carousel rectangle and the cover-fit fullscreen rectangle.
func (c *Carousel) drawZoomed(screen *ebiten.Image) {
	stage := c.zoom.Stage()
	if stage.IsActive() {
		maskW := c.layout.Viewport().Width
		for _, i := range stage.RenderOrder() {
			imgOff, maskOff := stage.Offsets(i)
			cover := c.layout.CoverRect(c.arena.aspects[i])

			maskRect := Rect{
				X:      maskOff * maskW,
				Y:      0,
				Width:  c.layout.Viewport().Width,
				Height: c.layout.Viewport().Height,
			}
			imageRect := cover
			imageRect.X += imgOff * maskW

			clipped := subImage(screen, maskRect)
			if clipped == nil {
				continue
			}
			drawImageInRect(clipped, c.arena.at(i).Bitmap, imageRect)
		}
		return
	}

	focused := c.zoom.Focused()
	from := c.layout.SlotRect(focused, c.scroll.Smoothed, c.arena.aspects[focused])
	to := c.layout.CoverRect(c.arena.aspects[focused])
	r := LerpRect(from, to, c.zoom.Eased())
	drawImageInRect(screen, c.arena.at(focused).Bitmap, r)
}

// drawReticle renders the center marker and/or the two side markers.
func (c *Carousel) drawReticle(screen *ebiten.Image) {
	vp := c.layout.Viewport()

	if c.reticle.CenterVisible() {
		arm := float32(c.reticle.CenterLength() * reticleArm)
		cx := float32(vp.Width / 2)
		cy := float32(vp.Height / 2)
		if arm > 0 {
			vector.StrokeLine(screen, cx-arm, cy, cx+arm, cy, reticleStroke, color.White, true)
			vector.StrokeLine(screen, cx, cy-arm, cx, cy+arm, reticleStroke, color.White, true)
		}
	}

	if c.reticle.SidesVisible() {
		arm := c.reticle.SidesLength() * reticleArm
		if arm <= 0 {
			return
		}
		rot := c.reticle.SidesRotation() * math.Pi / 180
		cy := vp.Height / 2
		for _, cx := range []float64{reticleSideMargin, vp.Width - reticleSideMargin} {
			drawRotatedCross(screen, cx, cy, arm, rot)
		}
	}
}

// drawRotatedCross strokes a plus-shaped marker rotated by rot radians.
func drawRotatedCross(screen *ebiten.Image, cx, cy, arm, rot float64) {
	sin, cos := math.Sincos(rot)
	// Horizontal arm rotated.
	x1, y1 := cx-arm*cos, cy-arm*sin
	x2, y2 := cx+arm*cos, cy+arm*sin
	vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2), reticleStroke, color.White, true)
	// Vertical arm rotated.
	x3, y3 := cx+arm*sin, cy-arm*cos
	x4, y4 := cx-arm*sin, cy+arm*cos
	vector.StrokeLine(screen, float32(x3), float32(y3), float32(x4), float32(y4), reticleStroke, color.White, true)
}

// drawTitle renders the focused slot's title, vertically offset by the
// title machine and clipped to a one-line window.
func (c *Carousel) drawTitle(screen *ebiten.Image) {
	i := c.title.Focused()
	if i < 0 || !c.arena.valid(i) {
		return
	}
	text := c.arena.at(i).Title
	if text == "" {
		return
	}
	offset := c.title.Offset()
	if offset >= 100 || offset <= -100 {
		return
	}

	vp := c.layout.Viewport()
	x := titleMarginX
	baseY := vp.Height - titleMarginY
	window := Rect{X: x, Y: baseY, Width: vp.Width / 2, Height: titleLineHeight}
	clipped := subImage(screen, window)
	if clipped == nil {
		return
	}
	y := baseY + offset/100*titleLineHeight
	ebitenutil.DebugPrintAt(clipped, text, int(x), int(y))
}

// drawCounter renders the "current / total" label in the configured
// style. Digits are drawn into a small offscreen image so the smooth
// style can cross-fade via ColorScale.
func (c *Carousel) drawCounter(screen *ebiten.Image) {
	vp := c.layout.Viewport()
	x := vp.Width - counterMarginX - counterImgW
	y := vp.Height - counterMarginY

	if c.counterOut == nil {
		c.counterOut = ebiten.NewImage(counterImgW, counterImgH)
		c.counterIn = ebiten.NewImage(counterImgW, counterImgH)
	}

	outLabel := fmt.Sprintf("%02d / %02d", c.counter.Current()+1, c.arena.len())
	inLabel := fmt.Sprintf("%02d / %02d", c.counter.Target()+1, c.arena.len())

	if !c.counter.IsActive() {
		c.counterIn.Clear()
		ebitenutil.DebugPrintAt(c.counterIn, inLabel, 0, 0)
		blitAt(screen, c.counterIn, x, y, 1)
		return
	}

	c.counterOut.Clear()
	c.counterIn.Clear()
	ebitenutil.DebugPrintAt(c.counterOut, outLabel, 0, 0)
	ebitenutil.DebugPrintAt(c.counterIn, inLabel, 0, 0)

	switch c.counter.Style() {
	case CounterSmooth:
		blitAt(screen, c.counterOut, x, y, c.counter.OutgoingOpacity())
		blitAt(screen, c.counterIn, x, y, c.counter.IncomingOpacity())
	default:
		// Snap and clipped both scroll vertically inside a clip window;
		// snap arrives on an eased offset, clipped on a linear one.
		window := Rect{X: x, Y: y, Width: counterImgW, Height: counterLineHeight}
		clipped := subImage(screen, window)
		if clipped == nil {
			return
		}
		shift := float64(c.counter.Direction()) * counterLineHeight
		p := c.counter.Offset()
		blitAt(clipped, c.counterOut, x, y-p*shift, 1)
		blitAt(clipped, c.counterIn, x, y+(1-p)*shift, 1)
	}
}

// blitAt draws src at (x, y) with the given alpha.
func blitAt(dst, src *ebiten.Image, x, y, alpha float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	dst.DrawImage(src, op)
}

// drawImageInRect scales img to exactly fill r. Nil images (possible in
// tests) are skipped.
func drawImageInRect(dst *ebiten.Image, img *ebiten.Image, r Rect) {
	if img == nil || r.Width <= 0 || r.Height <= 0 {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.Width/float64(b.Dx()), r.Height/float64(b.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

// subImage returns the clipped drawing region for r, or nil if r does
// not intersect dst.
func subImage(dst *ebiten.Image, r Rect) *ebiten.Image {
	clip := image.Rect(int(r.X), int(r.Y), int(r.X+r.Width), int(r.Y+r.Height))
	clip = clip.Intersect(dst.Bounds())
	if clip.Empty() {
		return nil
	}
	return dst.SubImage(clip).(*ebiten.Image)
}
