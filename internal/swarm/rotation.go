package swarm

import "image"

// Rotation cycles through a fixed list of generators, one step per frame.
type Rotation struct {
	gens []*Generator
	next int
}

// NewRotation cycles through gens in order.
func NewRotation(gens ...*Generator) *Rotation {
	return &Rotation{gens: gens}
}

// DefaultRotation is random lines, random, image, random closest. The image
// step is left out when img is nil.
func DefaultRotation(seed uint64, img image.Image) *Rotation {
	gens := []*Generator{
		NewGenerator(KindRandomLines, seed^0x11E5),
		NewGenerator(KindRandom, seed^0x4A7D),
	}
	if img != nil {
		gens = append(gens, NewImageGenerator(img, seed^0x1A6E))
	}
	gens = append(gens, NewGenerator(KindRandomClosest, seed^0xC105))
	return NewRotation(gens...)
}

func (r *Rotation) Len() int { return len(r.gens) }

// SetAccentPicks applies Generator.SetAccentPicks to every step.
func (r *Rotation) SetAccentPicks(n int) {
	for _, g := range r.gens {
		g.SetAccentPicks(n)
	}
}

// Next answers the next generator, wrapping at the end. Nil when empty.
func (r *Rotation) Next() *Generator {
	if len(r.gens) == 0 {
		return nil
	}
	g := r.gens[r.next]
	r.next = (r.next + 1) % len(r.gens)
	return g
}
