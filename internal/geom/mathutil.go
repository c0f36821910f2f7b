package geom

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// SCurve transforms a 0-1 value into an s shape (smoothstep, 3t²-2t³).
func SCurve(t float32) float32 { return (3 - 2*t) * t * t }

// SCurve64 is SCurve for float64 timers.
func SCurve64(t float64) float64 { return (3 - 2*t) * t * t }

// Mix is a scalar lerp.
func Mix(a, b, t float32) float32 { return a + (b-a)*t }

// MixVec3 lerps two vectors.
func MixVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Range is a closed float interval.
type Range struct {
	Min, Max float32
}

// Clamp limits v to the range.
func (r Range) Clamp(v float32) float32 {
	lo, hi := r.Min, r.Max
	if lo > hi {
		lo, hi = hi, lo
	}
	return mgl32.Clamp(v, lo, hi)
}

// Unit answers where v lies in the range, clamped to 0..1.
// An empty range always answers 0.
func (r Range) Unit(v float32) float32 {
	d := r.Max - r.Min
	if math32.Abs(d) < 1e-12 {
		return 0
	}
	return clamp01((v - r.Min) / d)
}

// At answers the value at unit position t (not clamped).
func (r Range) At(t float32) float32 { return Mix(r.Min, r.Max, t) }

// Convert maps v from this range into dst.
func (r Range) Convert(v float32, dst Range) float32 {
	return dst.At(r.Unit(v))
}
