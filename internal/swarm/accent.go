package swarm

import (
	"github.com/go-gl/mathgl/mgl32"

	"curveswarm/internal/geom"
	"curveswarm/internal/noise"
)

// Accents is the pool of short-lived sparks. They fade at a fixed rate,
// rise, and drift through a static noise field. Order is not stable.
type Accents struct {
	P []Particle

	Max   int
	Fade  float32 // alpha lost per tick
	Rise  float32 // world units of +y per tick
	Force float32 // scale applied to the drift field sample
}

// Spawn adds an accent unless the pool is full.
func (a *Accents) Spawn(pos mgl32.Vec3, alpha float32) bool {
	if len(a.P) >= a.Max {
		return false
	}
	a.P = append(a.P, Particle{Position: pos, Alpha: alpha, StartAlpha: alpha})
	return true
}

func (a *Accents) Len() int { return len(a.P) }

// Update advances every accent one tick. Expired accents are swapped to the
// back and dropped.
func (a *Accents) Update(bounds geom.Cube, field *noise.InterpCube) {
	for i := 0; i < len(a.P); {
		p := &a.P[i]
		p.Alpha -= a.Fade
		if p.Alpha <= 0 {
			last := len(a.P) - 1
			a.P[i] = a.P[last]
			a.P = a.P[:last]
			continue
		}

		p.Position[1] += a.Rise
		if field != nil && a.Force != 0 {
			force := field.At(bounds.ToUnit(p.Position))
			p.Position = p.Position.Add(force.Mul(a.Force))
		}
		i++
	}
}
