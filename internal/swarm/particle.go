// Package swarm animates particles along cubic Bezier curves. Generators
// compute the next frame of curves on a worker goroutine (Feeder) while the
// View interpolates the current one on the render goroutine.
package swarm

import (
	"github.com/go-gl/mathgl/mgl32"

	"curveswarm/internal/geom"
)

// Particle is one animated point. Curve is authoritative; Position and
// Alpha are recomputed from it every tick.
type Particle struct {
	Position   mgl32.Vec3
	Alpha      float32
	StartAlpha float32
	EndAlpha   float32
	Curve      geom.Bezier3
	// HasAccents marks the particle as a spark source for this cycle.
	HasAccents bool
}

// chain starts a new curve at the end of the previous one.
func (p *Particle) chain(end mgl32.Vec3, endAlpha float32) {
	p.Curve.P0 = p.Curve.P3
	p.Curve.P3 = end
	p.StartAlpha = p.EndAlpha
	p.EndAlpha = endAlpha
}

// straighten collapses the control points so the curve is a line.
func (p *Particle) straighten() {
	p.Curve.P1 = p.Curve.P0
	p.Curve.P2 = p.Curve.P3
}
