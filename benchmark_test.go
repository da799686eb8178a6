package galleria

import "testing"

func benchCarousel(count int) *Carousel {
	slots := make([]Slot, count)
	for i := range slots {
		slots[i] = Slot{Aspect: 1.5}
	}
	cfg := Config{Sources: []string{"unused"}}.withDefaults()
	return newFromSlots(cfg, slots, Callbacks{})
}

func BenchmarkCarouselTick(b *testing.B) {
	c := benchCarousel(20)
	c.scroll.AddVelocity(30)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Tick(1, testViewport)
	}
}

func BenchmarkCarouselTickZoomed(b *testing.B) {
	c := benchCarousel(20)
	c.EnterAt(10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Tick(1, testViewport)
	}
}

func BenchmarkStageAdvance(b *testing.B) {
	m := NewStageMachine(50)
	m.TransitionTo(49)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Advance(1)
	}
}

func BenchmarkScrollAdvance(b *testing.B) {
	p := NewScrollPhysics(0, 10000)
	p.AddVelocity(100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Advance(1)
	}
}

func TestTickDoesNotAllocate(t *testing.T) {
	c := benchCarousel(10)
	c.scroll.AddVelocity(30)
	c.Tick(1, testViewport)

	allocs := testing.AllocsPerRun(100, func() {
		c.Tick(1, testViewport)
	})
	if allocs > 1 {
		t.Errorf("Tick allocates %.1f times per frame", allocs)
	}
}
