package galleria

import (
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// Resizable allows the user to resize the window; the carousel
	// re-derives its responsive dimensions after the size settles.
	Resizable bool
}

// Run creates a window and drives the carousel's game loop until the
// window is closed or Teardown is called. It blocks until the loop ends.
func Run(c *Carousel, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 720
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g := &game{
		carousel: c,
		debounce: newViewportDebouncer(Viewport{
			Width:  float64(cfg.Width),
			Height: float64(cfg.Height),
			DPR:    ebiten.Monitor().DeviceScaleFactor(),
		}),
	}
	err := ebiten.RunGame(g)
	c.Teardown()
	return err
}

// game adapts a Carousel to ebiten.Game. Use it directly when embedding
// the carousel in an existing ebiten application is not enough and you
// need to own the loop yourself; otherwise prefer Run.
type game struct {
	carousel *Carousel
	debounce *viewportDebouncer
	width    int
	height   int
}

func (g *game) Update() error {
	c := g.carousel
	if c.torn {
		return ebiten.Termination
	}

	vp := g.debounce.observe(Viewport{
		Width:  float64(g.width),
		Height: float64(g.height),
		DPR:    ebiten.Monitor().DeviceScaleFactor(),
	})

	if c.gestures != nil && !c.gestures.Done() {
		c.gestures.Step(c)
	}
	c.readInput()

	start := time.Now()
	c.Tick(c.clock.Tick(), vp)
	if c.debug {
		fmt.Fprintf(os.Stderr, "[galleria] tick %s mode=%s index=%d scroll=%.1f\n",
			time.Since(start), c.mode, c.CurrentIndex(), c.scroll.Position)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.carousel.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width = outsideWidth
	g.height = outsideHeight
	return outsideWidth, outsideHeight
}
