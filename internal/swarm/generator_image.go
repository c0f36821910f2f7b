package swarm

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"

	"curveswarm/internal/geom"
)

// updateImage lays the particles on a square grid over the image. Dark
// pixels push particles back, bright ones pull them forward, and the blue
// channel nudges the target alpha.
func (g *Generator) updateImage(p GeneratorParams, l *List) {
	l.TransitionDuration = ImageTransition
	l.HoldDuration = ImageHold

	n := len(l.Particles)
	side := int(math32.Floor(math32.Sqrt(float32(n))))
	if g.img == nil || side < 1 {
		g.rest(l)
		return
	}

	b := g.img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 1 || h < 1 {
		g.rest(l)
		return
	}
	rows, cols := side, side

	x, y := 0, 0
	for i := range l.Particles {
		pt := &l.Particles[i]
		if y >= rows {
			// Past the grid: stay put.
			pt.chain(pt.Curve.P3, pt.EndAlpha)
			pt.straighten()
			continue
		}

		u, v := gridUnit(x, cols), gridUnit(y, rows)
		sx := clampInt(int(u*float32(w)), 0, w-1)
		sy := clampInt(int(v*float32(h)), 0, h-1)
		clr, _ := colorful.MakeColor(g.img.At(b.Min.X+sx, b.Min.Y+sy))

		depth := 1 - float32(clr.R+clr.G+clr.B)/3
		// Image rows run top-down, world y runs bottom-up.
		end := p.ExactWorldBounds.AtUnit(mgl32.Vec3{u, 1 - v, depth})
		pt.chain(end, geom.Mix(ImageAlphaMin, ImageAlphaMax, float32(clr.B)))
		pt.straighten()

		if x++; x >= cols {
			x = 0
			y++
		}
	}
}

// rest leaves every particle where it is for one cycle.
func (g *Generator) rest(l *List) {
	for i := range l.Particles {
		pt := &l.Particles[i]
		pt.chain(pt.Curve.P3, pt.EndAlpha)
		pt.straighten()
	}
}

func gridUnit(i, count int) float32 {
	if count <= 1 {
		return 0
	}
	return float32(i) / float32(count-1)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
