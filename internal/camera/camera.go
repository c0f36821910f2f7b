// Package camera holds the perspective camera the particles are viewed
// through and derives the world volume from what it can see.
package camera

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"curveswarm/internal/geom"
)

// Default view.
const (
	DefaultFovY = 35.0 // degrees
	DefaultEyeZ = 60.0
	DefaultNear = 0.1
	DefaultFar  = 1000.0

	// BoundsExpand widens the nominal world past the screen edges so
	// particles do not visibly start or stop at a border.
	BoundsExpand = 0.25
)

var errNoHit = errors.New("ray misses plane")

// Camera looks from Eye at Target. Width and Height are the framebuffer
// size in pixels.
type Camera struct {
	Eye, Target, Up mgl32.Vec3
	FovY            float32
	Near, Far       float32
	Width, Height   int
}

// New looks down -z at the origin from DefaultEyeZ.
func New(width, height int) Camera {
	return Camera{
		Eye:    mgl32.Vec3{0, 0, DefaultEyeZ},
		Up:     mgl32.Vec3{0, 1, 0},
		FovY:   DefaultFovY,
		Near:   DefaultNear,
		Far:    DefaultFar,
		Width:  width,
		Height: height,
	}
}

func (c Camera) Aspect() float32 {
	if c.Height <= 0 {
		return 1
	}
	return float32(c.Width) / float32(c.Height)
}

func (c Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FovY), c.Aspect(), c.Near, c.Far)
}

func (c Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Target, c.Up)
}

// ViewProjection is Projection * View, ready for a shader uniform.
func (c Camera) ViewProjection() mgl32.Mat4 {
	return c.Projection().Mul4(c.View())
}

// Pick casts a ray through window pixel (x, y), origin top left, and
// answers where it crosses the plane z = const.
func (c Camera) Pick(x, y, z float32) (mgl32.Vec3, bool) {
	if c.Width <= 0 || c.Height <= 0 {
		return mgl32.Vec3{}, false
	}
	// Window y runs down, GL y runs up.
	wy := float32(c.Height) - y
	view, proj := c.View(), c.Projection()
	near, err := mgl32.UnProject(mgl32.Vec3{x, wy, 0}, view, proj, 0, 0, c.Width, c.Height)
	if err != nil {
		return mgl32.Vec3{}, false
	}
	far, err := mgl32.UnProject(mgl32.Vec3{x, wy, 1}, view, proj, 0, 0, c.Width, c.Height)
	if err != nil {
		return mgl32.Vec3{}, false
	}

	dir := far.Sub(near)
	if math32.Abs(dir.Z()) < 1e-9 {
		return mgl32.Vec3{}, false
	}
	t := (z - near.Z()) / dir.Z()
	if t < 0 {
		return mgl32.Vec3{}, false
	}
	return near.Add(dir.Mul(t)), true
}

// WorldBounds picks the screen corners on the nearZ and farZ planes. exact
// fits the screen; nominal is exact grown by BoundsExpand on x and y.
func (c Camera) WorldBounds(nearZ, farZ float32) (exact, nominal geom.Cube, err error) {
	llX, llY := float32(0), float32(c.Height)
	urX, urY := float32(c.Width), float32(0)

	picks := []struct {
		x, y, z float32
		dst     *mgl32.Vec3
	}{
		{llX, llY, nearZ, &exact.NearLL},
		{urX, urY, nearZ, &exact.NearUR},
		{llX, llY, farZ, &exact.FarLL},
		{urX, urY, farZ, &exact.FarUR},
	}
	for _, p := range picks {
		pt, ok := c.Pick(p.x, p.y, p.z)
		if !ok {
			return geom.Cube{}, geom.Cube{}, fmt.Errorf("world bounds at (%g, %g, %g): %w", p.x, p.y, p.z, errNoHit)
		}
		*p.dst = pt
	}
	return exact, exact.Expand(BoundsExpand), nil
}
