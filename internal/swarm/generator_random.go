package swarm

import (
	"github.com/go-gl/mathgl/mgl32"

	"curveswarm/internal/geom"
)

func (g *Generator) updateRandom(p GeneratorParams, l *List) {
	l.TransitionDuration = RandomTransition
	for i := range l.Particles {
		pt := &l.Particles[i]
		pt.chain(g.nextPt(p.WorldBounds), 1)
		g.bend(&pt.Curve)
	}
}

// updateRandomClosest builds a pool of random targets the size of the list
// and lets each particle, in order, claim the nearest one still free. This
// is O(n²), acceptable at a few thousand particles on the worker.
func (g *Generator) updateRandomClosest(p GeneratorParams, l *List) {
	l.TransitionDuration = RandomTransition

	pool := g.pool[:0]
	for range l.Particles {
		pool = append(pool, g.nextPt(p.WorldBounds))
	}

	for i := range l.Particles {
		pt := &l.Particles[i]
		from := pt.Curve.P3
		best := 0
		bestD := float32(-1)
		for j, q := range pool {
			d := q.Sub(from)
			if d2 := d.Dot(d); bestD < 0 || d2 < bestD {
				best, bestD = j, d2
			}
		}
		pt.chain(pool[best], 1)
		g.bend(&pt.Curve)

		last := len(pool) - 1
		pool[best] = pool[last]
		pool = pool[:last]
	}
	g.pool = pool[:0]
}

// bend pulls the control points towards the middle of the curve and
// jitters them by a random direction scaled with the curve length. A true
// perpendicular makes the curves too wild.
func (g *Generator) bend(c *geom.Bezier3) {
	mid := geom.MixVec3(c.P0, c.P3, 0.5)
	amt := c.P3.Sub(c.P0).Len() * CurveJitter
	c.P1 = geom.MixVec3(c.P0, mid, 0.5).Add(g.jitter(amt))
	c.P2 = geom.MixVec3(c.P3, mid, 0.5).Add(g.jitter(amt))
}

func (g *Generator) jitter(amt float32) mgl32.Vec3 {
	if amt == 0 {
		return mgl32.Vec3{}
	}
	return g.rng.Direction().Mul(amt)
}
