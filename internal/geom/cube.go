package geom

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Cube is a volume bounded by a near and a far rectangle. The rectangles
// need not be the same size (a view frustum slice is the usual case).
type Cube struct {
	NearLL, NearUR mgl32.Vec3
	FarLL, FarUR   mgl32.Vec3
}

// AtUnit translates a unit position (all components 0-1) to a position in
// the cube: bilinear on the near and far planes, then linear by depth.
func (c Cube) AtUnit(unit mgl32.Vec3) mgl32.Vec3 {
	ll := MixVec3(c.NearLL, c.FarLL, unit.Z())
	ur := MixVec3(c.NearUR, c.FarUR, unit.Z())
	return mgl32.Vec3{
		Mix(ll.X(), ur.X(), unit.X()),
		Mix(ll.Y(), ur.Y(), unit.Y()),
		Mix(c.NearLL.Z(), c.FarLL.Z(), unit.Z()),
	}
}

// ToUnit is the approximate inverse of AtUnit. Points outside the cube are
// clamped to its faces.
func (c Cube) ToUnit(pt mgl32.Vec3) mgl32.Vec3 {
	w := unitIn(pt.Z(), c.NearLL.Z(), c.FarLL.Z())
	ll := MixVec3(c.NearLL, c.FarLL, w)
	ur := MixVec3(c.NearUR, c.FarUR, w)
	return mgl32.Vec3{
		unitIn(pt.X(), ll.X(), ur.X()),
		unitIn(pt.Y(), ll.Y(), ur.Y()),
		w,
	}
}

// Center answers the middle of the volume.
func (c Cube) Center() mgl32.Vec3 {
	return c.AtUnit(mgl32.Vec3{0.5, 0.5, 0.5})
}

// Expand grows the near and far rectangles by frac of their width and
// height on every side. Depth is unchanged.
func (c Cube) Expand(frac float32) Cube {
	nearExp := mgl32.Vec3{
		(c.NearUR.X() - c.NearLL.X()) * frac,
		(c.NearUR.Y() - c.NearLL.Y()) * frac,
		0,
	}
	farExp := mgl32.Vec3{
		(c.FarUR.X() - c.FarLL.X()) * frac,
		(c.FarUR.Y() - c.FarLL.Y()) * frac,
		0,
	}
	return Cube{
		NearLL: c.NearLL.Sub(nearExp),
		NearUR: c.NearUR.Add(nearExp),
		FarLL:  c.FarLL.Sub(farExp),
		FarUR:  c.FarUR.Add(farExp),
	}
}

func unitIn(v, a, b float32) float32 {
	d := b - a
	if math32.Abs(d) < 1e-12 {
		return 0
	}
	return clamp01((v - a) / d)
}
