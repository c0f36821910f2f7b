package geom

import "github.com/chewxy/math32"

// sampleEpsilon snaps positions that land a hair below a sample (from float
// error in unit*(n-1)) onto that sample instead of the one before it.
const sampleEpsilon = 1e-4

// LinearAt resamples values at a unit (0-1) index with linear interpolation.
// The index is clamped. An empty slice is a contract violation.
func LinearAt(unit float32, values []float32) float32 {
	n := len(values)
	if n < 1 {
		contractViolation("LinearAt: need at least 1 sample")
		return 0
	}
	i, frac := sampleIndex(unit, n)
	if i >= n-1 {
		return values[n-1]
	}
	return Mix(values[i], values[i+1], frac)
}

// HermiteAt resamples values at a unit (0-1) index with a 4-point
// Catmull-Rom cubic. Neighbours past either end wrap around. Fewer than 4
// samples is a contract violation.
func HermiteAt(unit float32, values []float32) float32 {
	n := len(values)
	if n < 4 {
		contractViolation("HermiteAt: need at least 4 samples")
		return 0
	}
	i, t := sampleIndex(unit, n)
	y0 := values[wrapIndex(i-1, n)]
	y1 := values[i]
	y2 := values[wrapIndex(i+1, n)]
	y3 := values[wrapIndex(i+2, n)]

	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2
	return ((a0*t+a1)*t+a2)*t + y1
}

// sampleIndex maps a unit index onto a sample and the fraction towards the
// next one. Floor picks the sample, round catches positions that are
// actually on the next boundary.
func sampleIndex(unit float32, n int) (int, float32) {
	pos := clamp01(unit) * float32(n-1)
	i := int(math32.Floor(pos))
	frac := pos - float32(i)
	if r := math32.Round(pos); r > float32(i) && r-pos < sampleEpsilon {
		i = int(r)
		frac = 0
	}
	if i > n-1 {
		i = n - 1
	}
	return i, frac
}

func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
