// Package galleria is an animated image carousel engine for [Ebitengine].
//
// Galleria takes an ordered set of images ("slots") and presents them in
// three mutually exclusive modes: an inline scrolling carousel, a
// fullscreen zoom on one slot, and a thumbnail strip shown while zoomed.
// Mode changes are animated by a set of independent state machines
// (scroll physics, stage offsets, zoom progress, mini-slider stagger,
// reticle markers, title reveal, index counter) that are all advanced
// once per frame from a shared clamped elapsed-time value.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and
// game loop for you:
//
//	c, err := galleria.New(galleria.Config{
//		Sources: []string{"a.jpg", "b.jpg", "c.jpg"},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	galleria.Run(c, galleria.RunConfig{Title: "Gallery", Width: 1280, Height: 720})
//
// To embed the carousel in an existing game, implement ebiten.Game
// yourself: forward input to the pointer/wheel/key methods, call
// [Carousel.Tick] once per update with the current [Viewport], and
// [Carousel.Draw] from your draw handler.
//
// # Interaction model
//
// Dragging or scrolling the wheel moves the carousel with velocity and
// edge damping. Clicking a slot zooms it to fullscreen while the other
// slots collapse into a thumbnail strip; arrow keys or clicking another
// thumbnail slide between fullscreen images; dragging or scrolling while
// zoomed exits back to the carousel. Secondary indicators (a center or
// side reticle, the slot title, a numeric index counter) follow the mode
// transitions automatically.
//
// Tweens use [gween]; rendering and input use [Ebitengine].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package galleria
