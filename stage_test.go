package galleria

import (
	"math"
	"testing"
)

func TestStageInitializeSnapsOffsets(t *testing.T) {
	m := NewStageMachine(5)
	m.InitializeStage(2)

	for i := 0; i < 5; i++ {
		img, mask := m.Offsets(i)
		wantSign := sideSign(i, 2)
		if img != wantSign*stageImageSpan {
			t.Errorf("slot %d image offset = %f, want %f", i, img, wantSign*stageImageSpan)
		}
		if mask != wantSign*stageMaskSpan {
			t.Errorf("slot %d mask offset = %f, want %f", i, mask, wantSign*stageMaskSpan)
		}
	}
	if m.IsActive() {
		t.Error("freshly initialized stage must be idle")
	}
}

func TestStageSequentialTransitionAnimates(t *testing.T) {
	m := NewStageMachine(3)
	m.InitializeStage(0)
	m.TransitionTo(1)

	if !m.IsActive() {
		t.Fatal("stage should be mid-transition after TransitionTo")
	}

	// Slot 0 must end up left of center; until then its offset moves
	// continuously, never jumping.
	prevImg, _ := m.Offsets(0)
	for i := 0; i < 600 && m.IsActive(); i++ {
		m.Advance(1)
		img, _ := m.Offsets(0)
		if math.Abs(img-prevImg) > 0.2 {
			t.Fatalf("slot 0 offset jumped from %f to %f in one tick", prevImg, img)
		}
		prevImg = img
	}
	if m.IsActive() {
		t.Fatal("transition did not settle within 600 ticks")
	}

	img, _ := m.Offsets(0)
	if math.Abs(img-(-stageImageSpan)) > 0.01 {
		t.Errorf("slot 0 image offset = %f, want ~%f", img, -stageImageSpan)
	}
}

func TestStageJumpSnapsNonEndpoints(t *testing.T) {
	// Immediately after a jump transition, every slot except the two
	// endpoints must already sit at its target.
	m := NewStageMachine(6)
	m.InitializeStage(0)
	m.JumpTo(5)

	for i := 0; i < 6; i++ {
		if i == 0 || i == 5 {
			continue
		}
		img, mask := m.Offsets(i)
		imgTarget, maskTarget := m.Targets(i)
		if img != imgTarget || mask != maskTarget {
			t.Errorf("slot %d offsets (%f, %f) should equal targets (%f, %f) right after jump",
				i, img, mask, imgTarget, maskTarget)
		}
	}

	// The endpoints animate.
	img, _ := m.Offsets(0)
	imgTarget, _ := m.Targets(0)
	if img == imgTarget {
		t.Error("old center should still be animating after jump")
	}
	img, _ = m.Offsets(5)
	imgTarget, _ = m.Targets(5)
	if img == imgTarget {
		t.Error("new center should still be animating after jump")
	}
}

func TestStageJumpFlagAutoClears(t *testing.T) {
	m := NewStageMachine(4)
	m.InitializeStage(0)
	m.JumpTo(3)

	// The next transition is sequential again: slot 1 should keep its
	// pre-transition offset and animate rather than snap.
	m.TransitionTo(0)
	img, _ := m.Offsets(2)
	imgTarget, _ := m.Targets(2)
	if img == imgTarget {
		t.Error("jump flag leaked into the following sequential transition")
	}
}

func TestStageRenderOrderCenterOnTop(t *testing.T) {
	m := NewStageMachine(5)
	m.InitializeStage(2)

	order := m.RenderOrder()
	if len(order) != 5 {
		t.Fatalf("render order has %d entries, want 5", len(order))
	}
	if order[len(order)-1] != 2 {
		t.Errorf("centered slot should be drawn last (topmost), got order %v", order)
	}

	// Distances from center never increase along painter order.
	prev := 5
	for _, idx := range order {
		d := idx - 2
		if d < 0 {
			d = -d
		}
		if d > prev {
			t.Fatalf("render order %v not sorted by distance from center", order)
		}
		prev = d
	}
}

func TestStageRenderOrderRebuiltOnTransition(t *testing.T) {
	m := NewStageMachine(3)
	m.InitializeStage(0)
	m.TransitionTo(2)

	order := m.RenderOrder()
	if order[len(order)-1] != 2 {
		t.Errorf("render order %v should end at new center 2", order)
	}
	if m.Center() != 2 {
		t.Errorf("center = %d, want 2", m.Center())
	}
}

func TestStageOffsetsMonotonic(t *testing.T) {
	m := NewStageMachine(3)
	m.InitializeStage(0)
	m.TransitionTo(2)

	prevGap := math.Inf(1)
	for i := 0; i < 600 && m.IsActive(); i++ {
		m.Advance(1)
		img, _ := m.Offsets(1)
		imgTarget, _ := m.Targets(1)
		gap := math.Abs(imgTarget - img)
		if gap > prevGap+1e-9 {
			t.Fatalf("slot 1 distance to target increased: %f -> %f", prevGap, gap)
		}
		prevGap = gap
	}
}
