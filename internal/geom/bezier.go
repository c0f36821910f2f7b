package geom

import "github.com/go-gl/mathgl/mgl32"

// Bezier3 is a cubic Bezier curve: start, control 1, control 2, end.
type Bezier3 struct {
	P0, P1, P2, P3 mgl32.Vec3
}

// Empty reports whether the curve starts where it ends.
func (b Bezier3) Empty() bool { return b.P0 == b.P3 }

// Clear collapses the curve onto the origin.
func (b *Bezier3) Clear() { *b = Bezier3{} }

// Point evaluates the curve at t. Values outside 0-1 extrapolate.
func (b Bezier3) Point(t float32) mgl32.Vec3 {
	u := 1 - t
	tt := t * t
	uu := u * u

	p := b.P0.Mul(uu * u)
	p = p.Add(b.P1.Mul(3 * uu * t))
	p = p.Add(b.P2.Mul(3 * u * tt))
	return p.Add(b.P3.Mul(tt * t))
}

// Length approximates the arc length by sampling steps points.
func (b Bezier3) Length(steps int) float32 {
	if steps < 2 {
		return b.P3.Sub(b.P0).Len()
	}
	var l float32
	last := b.P0
	total := float32(steps - 1)
	for k := 1; k < steps; k++ {
		next := b.Point(float32(k) / total)
		l += next.Sub(last).Len()
		last = next
	}
	return l
}
