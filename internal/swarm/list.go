package swarm

// List is a frame: every particle plus the timing the generator suggests
// for animating it.
//
// A List is owned by exactly one goroutine at a time. The render list never
// leaves the main goroutine; generation lists travel to the worker and back
// inside an op.
type List struct {
	Particles []Particle

	// TransitionDuration is how long to animate along the curves.
	TransitionDuration float64
	// HoldDuration is how long to rest at the curve ends before the next frame.
	HoldDuration float64
	// Source is the generator that produced the frame.
	Source GeneratorKind
}

// NewList allocates n particles at the origin, fully opaque.
func NewList(n int) *List {
	l := &List{}
	l.Resize(n)
	return l
}

func (l *List) Len() int { return len(l.Particles) }

// Resize grows or shrinks the list. New particles start opaque at the origin.
func (l *List) Resize(n int) {
	if n < 0 {
		n = 0
	}
	old := len(l.Particles)
	if n <= cap(l.Particles) {
		l.Particles = l.Particles[:n]
	} else {
		grown := make([]Particle, n)
		copy(grown, l.Particles)
		l.Particles = grown
	}
	for i := old; i < n; i++ {
		l.Particles[i] = Particle{Alpha: 1, StartAlpha: 1, EndAlpha: 1}
	}
}

// CopyFrom makes l a deep copy of src, reusing l's storage.
func (l *List) CopyFrom(src *List) {
	l.Particles = append(l.Particles[:0], src.Particles...)
	l.SetParametersFrom(src)
}

// Clone answers a deep copy.
func (l *List) Clone() *List {
	c := &List{}
	c.CopyFrom(l)
	return c
}

// SetParametersFrom copies the collection metadata, not the particles.
func (l *List) SetParametersFrom(o *List) {
	l.TransitionDuration = o.TransitionDuration
	l.HoldDuration = o.HoldDuration
	l.Source = o.Source
}

// AppendInstances packs x, y, z, alpha for each particle onto buf.
func AppendInstances(buf []float32, ps []Particle) []float32 {
	for i := range ps {
		p := &ps[i]
		buf = append(buf, p.Position[0], p.Position[1], p.Position[2], p.Alpha)
	}
	return buf
}
