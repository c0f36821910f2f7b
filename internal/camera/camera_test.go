package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var approx = cmpopts.EquateApprox(0, 1e-3)

func TestPickCenter(t *testing.T) {
	c := New(800, 600)
	for _, z := range []float32{0, -80, 10} {
		pt, ok := c.Pick(400, 300, z)
		require.True(t, ok)
		if diff := cmp.Diff(mgl32.Vec3{0, 0, z}, pt, approx); diff != "" {
			t.Errorf("z=%v (-want +got):\n%s", z, diff)
		}
	}
}

func TestPickProjectsBack(t *testing.T) {
	c := New(800, 600)
	pt, ok := c.Pick(100, 50, -40)
	require.True(t, ok)

	win := mgl32.Project(pt, c.View(), c.Projection(), 0, 0, c.Width, c.Height)
	assert.InDelta(t, 100, win.X(), 0.05)
	assert.InDelta(t, 600-50, win.Y(), 0.05)
}

func TestPickBehindEye(t *testing.T) {
	c := New(800, 600)
	_, ok := c.Pick(400, 300, DefaultEyeZ+10)
	assert.False(t, ok)

	_, ok = Camera{}.Pick(0, 0, 0)
	assert.False(t, ok)
}

func TestWorldBounds(t *testing.T) {
	c := New(800, 600)
	exact, nominal, err := c.WorldBounds(0, -80)
	require.NoError(t, err)

	assert.InDelta(t, 0, exact.NearLL.Z(), 1e-3)
	assert.InDelta(t, -80, exact.FarUR.Z(), 1e-3)

	// Symmetric about the view axis, lower left below and left of upper right.
	if diff := cmp.Diff(exact.NearLL.Mul(-1).Vec2(), exact.NearUR.Vec2(), approx); diff != "" {
		t.Errorf("near not symmetric:\n%s", diff)
	}
	assert.Less(t, exact.NearLL.X(), exact.NearUR.X())
	assert.Less(t, exact.NearLL.Y(), exact.NearUR.Y())

	// The far rectangle is wider, keeping the screen aspect.
	nearW := exact.NearUR.X() - exact.NearLL.X()
	farW := exact.FarUR.X() - exact.FarLL.X()
	assert.Greater(t, farW, nearW)
	farH := exact.FarUR.Y() - exact.FarLL.Y()
	assert.InDelta(t, 800.0/600.0, farW/farH, 1e-3)

	assert.InDelta(t, nearW*(1+2*BoundsExpand), nominal.NearUR.X()-nominal.NearLL.X(), 1e-3)
	assert.Equal(t, exact.FarLL.Z(), nominal.FarLL.Z())
	assert.Less(t, nominal.FarLL.X(), exact.FarLL.X())
}

func TestWorldBoundsBehindEye(t *testing.T) {
	_, _, err := New(800, 600).WorldBounds(0, DefaultEyeZ+1)
	assert.ErrorIs(t, err, errNoHit)
}
