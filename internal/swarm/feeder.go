package swarm

import (
	"context"
	"errors"
	"log/slog"

	"curveswarm/internal/worker"
)

var errNoGenerator = errors.New("swarm: generation op has no generator")

// FrameSource supplies generated frames to the View.
type FrameSource interface {
	HasFrame() bool
	// Frame adopts the pending frame into out and answers whether there was one.
	Frame(out *List) bool
}

// genOp carries everything one generation request needs to the worker and
// the result back.
type genOp struct {
	params    GeneratorParams
	gen       *Generator
	particles *List
}

func (o *genOp) Run(ctx context.Context) error {
	if o.gen == nil {
		return errNoGenerator
	}
	if o.particles == nil {
		o.particles = &List{}
	}
	o.gen.Update(o.params, o.particles)
	return nil
}

// Feeder keeps generation one frame ahead of the animation. It always has
// at most one request in flight and one finished frame waiting.
//
// All methods must be called from the same goroutine (the render loop).
type Feeder struct {
	log      *slog.Logger
	params   GeneratorParams
	rotation *Rotation
	worker   *worker.Operator[genOp, *genOp]

	hasFrame bool
	frame    *List
}

// NewFeeder starts the worker goroutine. Call Close to stop it.
func NewFeeder(rotation *Rotation, log *slog.Logger) *Feeder {
	if log == nil {
		log = slog.Default()
	}
	f := &Feeder{
		log:      log,
		rotation: rotation,
	}
	f.worker = worker.NewOperator[genOp]("generate", f.handle, log)
	return f
}

// Start submits the first request, generating from a copy of list.
func (f *Feeder) Start(params GeneratorParams, list *List) {
	f.params = params
	f.worker.Run(func(op *genOp) {
		op.params = f.params
		op.gen = f.rotation.Next()
		if op.particles == nil {
			op.particles = &List{}
		}
		op.particles.CopyFrom(list)
	})
}

// SetParams replaces the world snapshot used by later requests.
func (f *Feeder) SetParams(params GeneratorParams) { f.params = params }

// Update collects a finished request, if any. It never blocks.
func (f *Feeder) Update() { f.worker.Update() }

func (f *Feeder) HasFrame() bool { return f.hasFrame }

// Frame copies the pending frame's curves, alpha targets and accent flags
// into out, starting each curve at the particle's current position, then
// requests the next frame using the consumed buffer as scratch.
func (f *Feeder) Frame(out *List) bool {
	if !f.hasFrame || f.frame == nil {
		return false
	}

	n := min(len(out.Particles), len(f.frame.Particles))
	if n < 1 {
		return false
	}
	for i := range n {
		src := &f.frame.Particles[i]
		dst := &out.Particles[i]
		src.Curve.P0 = dst.Position
		dst.Curve = src.Curve
		dst.StartAlpha = src.StartAlpha
		dst.EndAlpha = src.EndAlpha
		dst.HasAccents = src.HasAccents
	}
	out.SetParametersFrom(f.frame)
	f.log.Debug("frame adopted", "source", f.frame.Source, "particles", n)

	f.hasFrame = false
	f.worker.Run(func(op *genOp) {
		op.params = f.params
		op.gen = f.rotation.Next()
		op.particles, f.frame = f.frame, op.particles
	})
	return true
}

// Stats answers the worker's op counters.
func (f *Feeder) Stats() worker.Stats { return f.worker.Stats() }

// Close stops the worker. A request already running is allowed to finish.
func (f *Feeder) Close() { f.worker.Close() }

func (f *Feeder) handle(op *genOp) {
	f.hasFrame = true
	f.frame, op.particles = op.particles, f.frame
}
