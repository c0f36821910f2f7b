package swarm

import (
	"curveswarm/internal/geom"
	"curveswarm/internal/noise"
)

// Drawer receives packed instance data (InstanceStride floats per
// particle). buf is reused after the call returns.
type Drawer interface {
	DrawParticles(buf []float32, count int)
}

// Stage is the animation state.
type Stage uint8

const (
	// StageHold rests at the curve ends waiting for the next frame.
	StageHold Stage = iota
	// StageTransition animates along the curves.
	StageTransition
)

func (s Stage) String() string {
	if s == StageTransition {
		return "transition"
	}
	return "hold"
}

// ViewConfig tunes the animation.
type ViewConfig struct {
	ParticleCount int
	AccentCap     int
	// RangeZ is the far..near z span used for the depth alpha falloff.
	RangeZ      geom.Range
	AccentFade  float32
	AccentRise  float32
	AccentForce float32
}

// View drives the particles each tick: it alternates between holding at
// the current frame and transitioning along the curves of the next one.
type View struct {
	cfg    ViewConfig
	source FrameSource
	bounds geom.Cube
	forces *noise.InterpCube

	particles *List
	accents   Accents

	stage      Stage
	elapsed    float64
	transition float64
	hold       float64
	accentTick int

	buf []float32

	// OnTransition, if set, is called each time a new frame is adopted.
	OnTransition func(*List)
}

// NewView creates the particle list. bounds is the nominal world volume,
// used to map accents into the force field.
func NewView(cfg ViewConfig, source FrameSource, bounds geom.Cube, forces *noise.InterpCube) *View {
	return &View{
		cfg:       cfg,
		source:    source,
		bounds:    bounds,
		forces:    forces,
		particles: NewList(cfg.ParticleCount),
		accents: Accents{
			Max:   cfg.AccentCap,
			Fade:  cfg.AccentFade,
			Rise:  cfg.AccentRise,
			Force: cfg.AccentForce,
		},
	}
}

// InitializeParticles scatters the particles with gen and parks them at
// their targets so the first frame animates from there.
func (v *View) InitializeParticles(gen *Generator, params GeneratorParams) {
	gen.Update(params, v.particles)
	for i := range v.particles.Particles {
		p := &v.particles.Particles[i]
		p.Curve.P0 = p.Curve.P3
		p.straighten()
		p.Position = p.Curve.P3
		p.Alpha, p.StartAlpha, p.EndAlpha = 1, 1, 1
	}
}

func (v *View) Particles() *List  { return v.particles }
func (v *View) Accents() *Accents { return &v.accents }
func (v *View) Stage() Stage      { return v.stage }

// SetBounds replaces the world volume used for the accent field.
func (v *View) SetBounds(b geom.Cube) { v.bounds = b }

// Update advances the animation by dt seconds.
func (v *View) Update(dt float64) {
	v.elapsed += dt
	v.accents.Update(v.bounds, v.forces)

	switch v.stage {
	case StageHold:
		if v.elapsed >= v.hold && v.source.HasFrame() && v.source.Frame(v.particles) {
			v.transition = v.particles.TransitionDuration
			v.hold = v.particles.HoldDuration
			v.stage = StageTransition
			v.elapsed = 0
			if v.OnTransition != nil {
				v.OnTransition(v.particles)
			}
		}
	case StageTransition:
		if v.elapsed >= v.transition {
			v.apply(1, false)
			v.stage = StageHold
			v.elapsed = 0
		} else {
			t := float32(geom.SCurve64(v.elapsed / v.transition))
			v.apply(t, v.accentTick == 0)
		}
	}

	if v.accentTick++; v.accentTick >= AccentSpawnTicks {
		v.accentTick = 0
	}
}

func (v *View) apply(t float32, spawn bool) {
	depth := geom.Range{Min: DepthAlphaFar, Max: DepthAlphaNear}
	for i := range v.particles.Particles {
		p := &v.particles.Particles[i]
		p.Position = p.Curve.Point(t)
		p.Alpha = geom.Mix(p.StartAlpha, p.EndAlpha, t)
		// Fade out a little with distance.
		p.Alpha *= v.cfg.RangeZ.Convert(p.Position.Z(), depth)

		if spawn && p.HasAccents {
			v.accents.Spawn(p.Position, p.Alpha*AccentAlphaScale)
		}
	}
}

// Draw hands the primary particles, then the accents, to d.
func (v *View) Draw(d Drawer) {
	v.buf = AppendInstances(v.buf[:0], v.particles.Particles)
	d.DrawParticles(v.buf, v.particles.Len())

	if v.accents.Len() > 0 {
		v.buf = AppendInstances(v.buf[:0], v.accents.P)
		d.DrawParticles(v.buf, v.accents.Len())
	}
}
