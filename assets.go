package galleria

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"

	// WebP sources decode through the x/image registration.
	_ "golang.org/x/image/webp"
)

// loadSlots decodes every configured source concurrently. A failed item
// is logged and excluded rather than failing the load; the survivors are
// renumbered densely in their original order. Titles are matched to
// sources by position before exclusion.
func loadSlots(sources, titles []string) []Slot {
	type loaded struct {
		img   *ebiten.Image
		title string
		ok    bool
	}
	results := make([]loaded, len(sources))

	var g errgroup.Group
	for i, src := range sources {
		g.Go(func() error {
			img, err := decodeImage(src)
			if err != nil {
				fmt.Fprintf(os.Stderr, "[galleria] %v\n", &assetError{Source: src, Err: err})
				return nil
			}
			results[i].img = img
			results[i].ok = true
			if i < len(titles) {
				results[i].title = titles[i]
			}
			return nil
		})
	}
	_ = g.Wait() // per-item failures are swallowed above

	slots := make([]Slot, 0, len(results))
	for _, r := range results {
		if !r.ok {
			continue
		}
		b := r.img.Bounds()
		slots = append(slots, Slot{
			Bitmap: r.img,
			Aspect: float64(b.Dx()) / float64(b.Dy()),
			Title:  r.title,
		})
	}
	return slots
}

// decodeImage reads and decodes one source file into a GPU image.
func decodeImage(path string) (*ebiten.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return ebiten.NewImageFromImage(img), nil
}
