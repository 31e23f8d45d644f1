// Package ease provides interpolation helpers and easing curves for
// animation and value smoothing. Every easing function maps t in [0, 1] to a
// progress value starting at 0 and ending at 1; some curves overshoot in
// between on purpose.
package ease

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Lerp linearly interpolates between a and b. t outside [0, 1] extrapolates.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpVec3 linearly interpolates between two vectors componentwise.
func LerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// SlerpQuat spherically interpolates between two rotations. The result is
// re-normalized.
func SlerpQuat(a, b mgl64.Quat, t float64) mgl64.Quat {
	return mgl64.QuatSlerp(a, b, t).Normalize()
}

// NlerpQuat interpolates between two rotations with normalized linear
// interpolation, cheaper than SlerpQuat and adequate for small steps.
func NlerpQuat(a, b mgl64.Quat, t float64) mgl64.Quat {
	return mgl64.QuatNlerp(a, b, t).Normalize()
}

// Clamp01 clamps t to [0, 1].
func Clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

// Remap maps value from the range [fromMin, fromMax] into [toMin, toMax].
func Remap(value, fromMin, fromMax, toMin, toMax float64) float64 {
	t := (value - fromMin) / (fromMax - fromMin)
	return toMin + t*(toMax-toMin)
}

// Smoothstep is the S-shaped curve 3t² - 2t³, clamped to [0, 1].
func Smoothstep(t float64) float64 {
	t = Clamp01(t)
	return t * t * (3 - 2*t)
}

// Smootherstep is the curve 6t⁵ - 15t⁴ + 10t³, with zero first and second
// derivatives at both ends. Clamped to [0, 1].
func Smootherstep(t float64) float64 {
	t = Clamp01(t)
	return t * t * t * (t*(t*6-15) + 10)
}

// InQuad starts slow and accelerates.
func InQuad(t float64) float64 {
	return t * t
}

// OutQuad starts fast and decelerates.
func OutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// InOutQuad is slow at both ends, fast in the middle.
func InOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - 2*(1-t)*(1-t)
}

// InCubic starts slow and accelerates.
func InCubic(t float64) float64 {
	return t * t * t
}

// OutCubic starts fast and decelerates.
func OutCubic(t float64) float64 {
	t = 1 - t
	return 1 - t*t*t
}

// InOutCubic is slow at both ends, fast in the middle.
func InOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	t = 1 - t
	return 1 - 4*t*t*t
}

// InQuart starts slow and accelerates.
func InQuart(t float64) float64 {
	return t * t * t * t
}

// OutQuart starts fast and decelerates.
func OutQuart(t float64) float64 {
	t = 1 - t
	return 1 - t*t*t*t
}

// InOutQuart is slow at both ends, fast in the middle.
func InOutQuart(t float64) float64 {
	if t < 0.5 {
		return 8 * t * t * t * t
	}
	t = 1 - t
	return 1 - 8*t*t*t*t
}

// OutElastic overshoots the target and springs back.
func OutElastic(t float64) float64 {
	if t == 0 {
		return 0
	}
	if t == 1 {
		return 1
	}
	const p = 0.3
	const s = p / 4
	return math.Pow(2, -10*t)*math.Sin((t-s)*(2*math.Pi)/p) + 1
}

// OutBounce settles on the target like a ball dropped on the ground.
func OutBounce(t float64) float64 {
	switch {
	case t < 1/2.75:
		return 7.5625 * t * t
	case t < 2/2.75:
		t -= 1.5 / 2.75
		return 7.5625*t*t + 0.75
	case t < 2.5/2.75:
		t -= 2.25 / 2.75
		return 7.5625*t*t + 0.9375
	default:
		t -= 2.625 / 2.75
		return 7.5625*t*t + 0.984375
	}
}
