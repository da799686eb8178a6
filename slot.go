package galleria

import "github.com/hajimehoshi/ebiten/v2"

// Slot is one entry in the ordered carousel sequence. Slots are created
// once at load time and immutable thereafter; the Index is the stable
// handle every machine keys its per-slot state by. A new sequence
// requires constructing a new Carousel.
type Slot struct {
	Index  int
	Bitmap *ebiten.Image
	Aspect float64 // natural width / height
	Title  string
}

// slotArena is the fixed-size slot store, established once from the
// validated item count and never resized.
type slotArena struct {
	slots   []Slot
	aspects []float64 // parallel cache handed to layout hit-testing
}

func newSlotArena(slots []Slot) *slotArena {
	a := &slotArena{
		slots:   slots,
		aspects: make([]float64, len(slots)),
	}
	for i := range slots {
		a.slots[i].Index = i
		a.aspects[i] = slots[i].Aspect
	}
	return a
}

func (a *slotArena) len() int {
	return len(a.slots)
}

func (a *slotArena) at(i int) *Slot {
	return &a.slots[i]
}

func (a *slotArena) valid(i int) bool {
	return i >= 0 && i < len(a.slots)
}
