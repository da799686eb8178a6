package galleria

import "github.com/tanema/gween/ease"

// Lerp linearly interpolates between a and b by t. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Decay moves v toward target by the proportional-closing law
//
//	v += (target - v) * rate * dt
//
// which is an implicit exponential approach, framerate-compensated via
// dt. The step is clamped so a large rate*dt can never overshoot the
// target; every machine in the package relies on that monotonicity.
func Decay(v, target, rate, dt float64) float64 {
	step := rate * dt
	if step > 1 {
		step = 1
	} else if step < 0 {
		step = 0
	}
	return v + (target-v)*step
}

// CubicOut is the cubic ease-out curve 1-(1-t)^3 for t in [0, 1].
// Input outside the range is clamped.
func CubicOut(t float64) float64 {
	return float64(ease.OutCubic(float32(clamp01(t)), 0, 1, 1))
}

// QuadOut is the quadratic ease-out curve for t in [0, 1].
// Input outside the range is clamped.
func QuadOut(t float64) float64 {
	return float64(ease.OutQuad(float32(clamp01(t)), 0, 1, 1))
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
