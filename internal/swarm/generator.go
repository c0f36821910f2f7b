package swarm

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"

	"curveswarm/internal/geom"
	"curveswarm/internal/noise"
)

// GeneratorParams is the world snapshot a generation request runs against.
type GeneratorParams struct {
	// WorldBounds extends past the screen edges so motion does not start
	// or stop visibly at a border.
	WorldBounds geom.Cube
	// ExactWorldBounds fits the screen exactly.
	ExactWorldBounds geom.Cube
}

// GeneratorKind selects one of the fixed generation strategies.
type GeneratorKind uint8

const (
	// KindRandom sends each particle to an independent random point.
	KindRandom GeneratorKind = iota
	// KindRandomClosest assigns each particle the nearest unclaimed point
	// from a random pool.
	KindRandomClosest
	// KindLines attracts particles to two fixed diagonals.
	KindLines
	// KindRandomLines attracts particles to freshly generated polylines.
	KindRandomLines
	// KindImage lays the particles out on a grid shaped by an image.
	KindImage
)

func (k GeneratorKind) String() string {
	switch k {
	case KindRandom:
		return "random"
	case KindRandomClosest:
		return "random-closest"
	case KindLines:
		return "lines"
	case KindRandomLines:
		return "random-lines"
	case KindImage:
		return "image"
	}
	return "unknown"
}

// Generator writes the next curve for every particle in a List.
//
// A Generator is not safe for concurrent use. The Feeder hands it to the
// worker together with the list it fills, one request at a time.
type Generator struct {
	kind  GeneratorKind
	rng   *noise.Rand
	lines []geom.Polyline
	img   image.Image
	pool  []mgl32.Vec3
	picks int
}

// NewGenerator creates a generator of the given kind with its own RNG.
func NewGenerator(kind GeneratorKind, seed uint64) *Generator {
	return &Generator{kind: kind, rng: noise.NewRand(seed), picks: AccentPicks}
}

// NewImageGenerator creates a KindImage generator sampling img.
func NewImageGenerator(img image.Image, seed uint64) *Generator {
	g := NewGenerator(KindImage, seed)
	g.img = img
	return g
}

func (g *Generator) Kind() GeneratorKind { return g.kind }

// SetAccentPicks changes how many accent sources are drawn per frame.
func (g *Generator) SetAccentPicks(n int) { g.picks = max(n, 0) }

// Update writes the next frame into l: default timing, then the strategy,
// then a fresh set of accent sources.
func (g *Generator) Update(p GeneratorParams, l *List) {
	l.TransitionDuration = DefaultTransition
	l.HoldDuration = DefaultHold
	l.Source = g.kind

	switch g.kind {
	case KindRandom:
		g.updateRandom(p, l)
	case KindRandomClosest:
		g.updateRandomClosest(p, l)
	case KindLines:
		g.updateLines(p, l)
	case KindRandomLines:
		g.updateRandomLines(p, l)
	case KindImage:
		g.updateImage(p, l)
	}

	g.pickAccents(l)
}

func (g *Generator) pickAccents(l *List) {
	for i := range l.Particles {
		l.Particles[i].HasAccents = false
	}
	n := len(l.Particles)
	if n == 0 {
		return
	}
	for range g.picks {
		l.Particles[g.rng.Intn(n)].HasAccents = true
	}
}

func (g *Generator) nextPt(c geom.Cube) mgl32.Vec3 {
	return c.AtUnit(g.rng.UnitVec())
}
