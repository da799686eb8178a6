package galleria

import (
	"encoding/json"
	"fmt"
)

// gestureStep represents a single action in a gesture script.
type gestureStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	DeltaX float64 `json:"deltaX,omitempty"`
	DeltaY float64 `json:"deltaY,omitempty"`
	Dir    int     `json:"dir,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// gestureScript is the top-level JSON structure for a gesture script.
type gestureScript struct {
	Steps []gestureStep `json:"steps"`
}

// GestureRunner sequences injected input events across frames so full
// interaction scenarios (click to zoom, slide, drag out) can be replayed
// deterministically, headless, in tests or soak runs. Attach via
// SetGestureRunner.
type GestureRunner struct {
	steps     []gestureStep
	cursor    int
	waitCount int
	done      bool
}

// LoadGestureScript parses a JSON gesture script. Supported actions:
// "click", "drag", "wheel", "key", "wait".
func LoadGestureScript(jsonData []byte) (*GestureRunner, error) {
	var script gestureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("galleria: parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("galleria: parse gesture script: no steps")
	}
	return &GestureRunner{steps: script.Steps}, nil
}

// SetGestureRunner attaches a runner; Step drives it, typically once per
// Tick.
func (c *Carousel) SetGestureRunner(r *GestureRunner) {
	c.gestures = r
}

// Done reports whether every step has been executed and drained.
func (r *GestureRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame: it waits for pending injections
// to drain, counts down waits, then executes the next step.
func (r *GestureRunner) Step(c *Carousel) {
	if r.done {
		return
	}
	if len(c.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "click":
		c.InjectClick(st.X, st.Y)
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		c.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "wheel":
		c.InjectWheel(st.DeltaX, st.DeltaY)
	case "key":
		c.InjectKey(st.Dir)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(c.injectQueue) == 0 {
		r.done = true
	}
}
