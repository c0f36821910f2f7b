package noise

import (
	"math/bits"

	"github.com/go-gl/mathgl/mgl32"

	"curveswarm/internal/geom"
)

// Dropoff scales the displacement amplitude at each recursion level.
const Dropoff float32 = 0.9

// MidpointDisplacement fills values with 1D fractal noise in roughly
// [-1, 1]: both endpoints come straight from r, then each midpoint is the
// average of its range ends plus a displacement that shrinks by Dropoff per
// level.
func MidpointDisplacement(r *Rand, values []float32) {
	n := len(values)
	if n == 0 {
		return
	}
	values[0] = r.RangeF32(-1, 1)
	values[n-1] = r.RangeF32(-1, 1)
	displace(r, values, 0, n-1, Dropoff, bits.Len(uint(n)))
}

func displace(r *Rand, values []float32, a, b int, amp float32, depth int) {
	mid := a + (b-a)/2
	if depth <= 0 || mid <= a || mid >= b {
		return
	}
	values[mid] = values[a]*0.5 + values[b]*0.5 + r.RangeF32(-1, 1)*amp
	displace(r, values, a, mid, amp*Dropoff, depth-1)
	displace(r, values, mid, b, amp*Dropoff, depth-1)
}

// InterpCube is a cheap pseudo-random 3D vector field: one noise array per
// axis, each sampled independently.
type InterpCube struct {
	X, Y, Z []float32
}

// NewInterpCube fills each axis with depth samples from r.
func NewInterpCube(r *Rand, depth int) *InterpCube {
	c := &InterpCube{
		X: make([]float32, depth),
		Y: make([]float32, depth),
		Z: make([]float32, depth),
	}
	MidpointDisplacement(r, c.X)
	MidpointDisplacement(r, c.Y)
	MidpointDisplacement(r, c.Z)
	return c
}

// At samples the field at a unit position. Components outside 0-1 clamp.
func (c *InterpCube) At(unit mgl32.Vec3) mgl32.Vec3 {
	if c == nil || len(c.X) == 0 {
		return mgl32.Vec3{}
	}
	return mgl32.Vec3{
		geom.LinearAt(unit.X(), c.X),
		geom.LinearAt(unit.Y(), c.Y),
		geom.LinearAt(unit.Z(), c.Z),
	}
}
