// Package noise provides the seedable random source and the 1D fractal
// noise used for the accent drift field.
package noise

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// splitmix64 is a fast, high-quality 64-bit mixer.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Rand is a tiny deterministic RNG (xorshift64*). Each owner keeps its own;
// nothing in this module shares one across goroutines.
type Rand struct {
	s uint64
}

// NewRand seeds a generator. Seeds are mixed first so nearby seeds diverge.
func NewRand(seed uint64) *Rand {
	s := splitmix64(seed)
	if s == 0 {
		s = 1
	}
	return &Rand{s: s}
}

// Derive answers a new generator whose stream is independent of r but
// fully determined by r's seed and salt.
func (r *Rand) Derive(salt uint64) *Rand {
	return NewRand(r.NextU64() ^ salt)
}

func (r *Rand) NextU64() uint64 {
	x := r.s
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.s = x
	return x * 2685821657736338717
}

// Intn answers [0, n).
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.NextU64() % uint64(n))
}

// Range answers [min, max] inclusive.
func (r *Rand) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}

// Float32 answers [0, 1).
func (r *Rand) Float32() float32 {
	return float32(r.NextU64()>>40) * (1.0 / (1 << 24))
}

func (r *Rand) RangeF32(min, max float32) float32 {
	if max <= min {
		return min
	}
	return min + (max-min)*r.Float32()
}

// UnitVec answers a point in the unit cube [0,1)³.
func (r *Rand) UnitVec() mgl32.Vec3 {
	return mgl32.Vec3{r.Float32(), r.Float32(), r.Float32()}
}

// Direction answers a random unit-length vector.
func (r *Rand) Direction() mgl32.Vec3 {
	for range 8 {
		v := mgl32.Vec3{r.RangeF32(-1, 1), r.RangeF32(-1, 1), r.RangeF32(-1, 1)}
		if l := v.Len(); l > 1e-3 && l <= 1 {
			return v.Mul(1 / l)
		}
	}
	// Rejection kept missing; fall back to spherical coordinates.
	theta := r.RangeF32(0, 2*math32.Pi)
	z := r.RangeF32(-1, 1)
	s := math32.Sqrt(1 - z*z)
	return mgl32.Vec3{s * math32.Cos(theta), s * math32.Sin(theta), z}
}
