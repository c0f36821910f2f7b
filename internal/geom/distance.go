package geom

import "github.com/go-gl/mathgl/mgl32"

// NoDistance is answered by the polyline queries when there was nothing to
// measure against. Callers must not use the closest point in that case.
const NoDistance float32 = -1

// Polyline is an ordered list of points, optionally closed (last joins first).
type Polyline struct {
	Points []mgl32.Vec3
	Closed bool
}

// Add appends a point.
func (p *Polyline) Add(pt mgl32.Vec3) { p.Points = append(p.Points, pt) }

// DistanceToSegment answers the distance from pt to the segment a-b and the
// closest point on the segment.
func DistanceToSegment(pt, a, b mgl32.Vec3) (float32, mgl32.Vec3) {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return pt.Sub(a).Len(), a
	}

	// Project pt onto the line a + t(b-a).
	t := pt.Sub(a).Dot(ab) / l2
	switch {
	case t < 0:
		return pt.Sub(a).Len(), a
	case t > 1:
		return pt.Sub(b).Len(), b
	}
	proj := a.Add(ab.Mul(t))
	return pt.Sub(proj).Len(), proj
}

// DistanceToPolyline answers the nearest distance from pt to any segment of
// poly, respecting Closed. Polylines with fewer than 2 points answer NoDistance.
func DistanceToPolyline(pt mgl32.Vec3, poly Polyline) (float32, mgl32.Vec3) {
	pts := poly.Points
	if len(pts) < 2 {
		return NoDistance, mgl32.Vec3{}
	}

	a := pts[0]
	rest := pts[1:]
	if poly.Closed {
		a = pts[len(pts)-1]
		rest = pts
	}

	best := NoDistance
	var closest mgl32.Vec3
	for _, b := range rest {
		d, found := DistanceToSegment(pt, a, b)
		if best < 0 || d < best {
			best = d
			closest = found
		}
		a = b
	}
	return best, closest
}

// DistanceToPolylines answers the nearest distance over a set of polylines,
// skipping those too short to measure.
func DistanceToPolylines(pt mgl32.Vec3, polys []Polyline) (float32, mgl32.Vec3) {
	best := NoDistance
	var closest mgl32.Vec3
	for _, poly := range polys {
		d, found := DistanceToPolyline(pt, poly)
		if d < 0 {
			continue
		}
		if best < 0 || d < best {
			best = d
			closest = found
		}
	}
	return best, closest
}
