package swarm

import (
	"github.com/go-gl/mathgl/mgl32"

	"curveswarm/internal/geom"
)

func (g *Generator) updateLines(p GeneratorParams, l *List) {
	if len(g.lines) == 0 {
		g.lines = fixedLines(p.WorldBounds)
	}
	g.attract(l)
}

func (g *Generator) updateRandomLines(p GeneratorParams, l *List) {
	g.nextLines(p.WorldBounds)
	g.attract(l)
}

// attract moves each particle in a straight line to the closest point on
// the nearest line.
func (g *Generator) attract(l *List) {
	for i := range l.Particles {
		pt := &l.Particles[i]
		end := pt.Curve.P3
		if d, closest := geom.DistanceToPolylines(end, g.lines); d >= 0 {
			end = closest
		}
		pt.chain(end, 1)
		pt.straighten()
	}
}

func (g *Generator) nextLines(c geom.Cube) {
	g.lines = g.lines[:0]
	groups := g.rng.Range(RandomLineGroupsMin, RandomLineGroupsMax)
	for range groups {
		n := g.rng.Range(RandomLinePointsMin, RandomLinePointsMax)
		poly := geom.Polyline{Points: make([]mgl32.Vec3, 0, n)}
		for range n {
			poly.Add(g.nextPt(c))
		}
		g.lines = append(g.lines, poly)
	}
}

// fixedLines crosses the volume corner to corner, front to back.
func fixedLines(c geom.Cube) []geom.Polyline {
	return []geom.Polyline{
		{Points: []mgl32.Vec3{
			c.AtUnit(mgl32.Vec3{0, 0, 0.9}),
			c.AtUnit(mgl32.Vec3{1, 1, 0.1}),
		}},
		{Points: []mgl32.Vec3{
			c.AtUnit(mgl32.Vec3{1, 0, 0.1}),
			c.AtUnit(mgl32.Vec3{0, 1, 0.9}),
		}},
	}
}
