// Package app wires the swarm, camera, audio and renderer into the
// desktop program.
package app

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"

	"curveswarm/internal/camera"
	"curveswarm/internal/config"
	"curveswarm/internal/noise"
	"curveswarm/internal/swarm"
)

// ForceFieldDepth is the sample count per axis of the accent drift field.
const ForceFieldDepth = 128

// Seed salts for the independent random streams.
const (
	saltForces   = 0xF0CE
	saltInitial  = 0x1417
	saltRotation = 0x207A
)

// Scene is everything that animates, independent of the window. Update,
// Draw and Resize must be called from one goroutine.
type Scene struct {
	log    *slog.Logger
	cam    camera.Camera
	params swarm.GeneratorParams
	rangeZ [2]float32 // near, far

	feeder *swarm.Feeder
	view   *swarm.View

	// OnTransition, if set, is told the source of every adopted frame.
	OnTransition func(swarm.GeneratorKind)
}

// NewScene derives the world volume for a width x height framebuffer,
// scatters the particles and starts generating the first frame. img may
// be nil, in which case the image step is left out of the rotation.
func NewScene(s config.Settings, seed uint64, img image.Image, width, height int, log *slog.Logger) (*Scene, error) {
	if log == nil {
		log = slog.Default()
	}
	sc := &Scene{
		log:    log,
		cam:    camera.New(width, height),
		rangeZ: [2]float32{s.RangeZ.Max, s.RangeZ.Min},
	}
	if err := sc.updateBounds(); err != nil {
		return nil, err
	}

	root := noise.NewRand(seed)
	forces := noise.NewInterpCube(root.Derive(saltForces), ForceFieldDepth)

	rotation := swarm.DefaultRotation(root.Derive(saltRotation).NextU64(), img)
	rotation.SetAccentPicks(s.AccentPicks)
	sc.feeder = swarm.NewFeeder(rotation, log)

	sc.view = swarm.NewView(s.View(), sc.feeder, sc.params.WorldBounds, forces)
	sc.view.OnTransition = sc.transitioned
	sc.view.InitializeParticles(swarm.NewGenerator(swarm.KindRandom, root.Derive(saltInitial).NextU64()), sc.params)

	sc.feeder.Start(sc.params, sc.view.Particles())
	log.Info("scene ready",
		"particles", s.ParticleCount,
		"steps", rotation.Len(),
		"image", img != nil,
	)
	return sc, nil
}

// Resize re-derives the world volume. Frames already generated keep their
// old targets; later requests use the new volume.
func (sc *Scene) Resize(width, height int) error {
	if width == sc.cam.Width && height == sc.cam.Height {
		return nil
	}
	sc.cam.Width, sc.cam.Height = width, height
	if err := sc.updateBounds(); err != nil {
		return err
	}
	sc.feeder.SetParams(sc.params)
	sc.view.SetBounds(sc.params.WorldBounds)
	sc.log.Info("resized", "width", width, "height", height)
	return nil
}

func (sc *Scene) updateBounds() error {
	exact, nominal, err := sc.cam.WorldBounds(sc.rangeZ[0], sc.rangeZ[1])
	if err != nil {
		return fmt.Errorf("world bounds: %w", err)
	}
	sc.params = swarm.GeneratorParams{WorldBounds: nominal, ExactWorldBounds: exact}
	return nil
}

// Update collects finished generation work and advances the animation.
func (sc *Scene) Update(dt float64) {
	sc.feeder.Update()
	sc.view.Update(dt)
}

func (sc *Scene) Draw(d swarm.Drawer) { sc.view.Draw(d) }

func (sc *Scene) ViewProjection() mgl32.Mat4 { return sc.cam.ViewProjection() }

func (sc *Scene) Stage() swarm.Stage { return sc.view.Stage() }

func (sc *Scene) Params() swarm.GeneratorParams { return sc.params }

// Close stops the generation worker.
func (sc *Scene) Close() {
	sc.feeder.Close()
	st := sc.feeder.Stats()
	sc.log.Info("scene closed", "generated", st.Completed, "dropped", st.Dropped)
}

func (sc *Scene) transitioned(l *swarm.List) {
	sc.log.Debug("transition",
		"source", l.Source,
		"transition", l.TransitionDuration,
		"hold", l.HoldDuration,
	)
	if sc.OnTransition != nil {
		sc.OnTransition(l.Source)
	}
}
