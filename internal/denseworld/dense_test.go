package denseworld

import (
	"testing"

	"github.com/COP4520Team1/voxel-ray-tracer/internal/geom"
	"github.com/COP4520Team1/voxel-ray-tracer/internal/voxel"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mglVec3 = mgl32.Vec3

func mglVec(x, y, z float32) mgl32.Vec3 { return mgl32.Vec3{x, y, z} }

type fixedGen struct {
	voxels map[geom.Vec3i]voxel.Voxel
}

func (f fixedGen) Lookup(pos geom.Vec3i) (voxel.Voxel, bool) {
	v, ok := f.voxels[pos]
	return v, ok
}

func unitBB() geom.IAabb {
	return geom.New(geom.Vec3i{0, 0, 0}, geom.Vec3i{1, 1, 1})
}

func TestDDASolidCube(t *testing.T) {
	gen := fixedGen{voxels: map[geom.Vec3i]voxel.Voxel{}}
	bb := unitBB()
	bb.Iter(func(p geom.Vec3i) bool {
		gen.voxels[p] = voxel.Voxel{R: 1, G: 1, B: 1}
		return true
	})
	store := New(gen, bb)

	r := geom.NewRay(mglVec(0, -5, 0), mglVec(0, 1, 0))
	v, ok := store.Trace(r)
	require.True(t, ok)
	assert.Equal(t, voxel.Voxel{R: 1, G: 1, B: 1}, v)
}

func TestDDASingleLitCell(t *testing.T) {
	bb := unitBB()
	gen := fixedGen{voxels: map[geom.Vec3i]voxel.Voxel{
		{-1, -1, -1}: {R: 1, G: 1, B: 1},
	}}
	store := New(gen, bb)

	hit := geom.NewRay(mglVec(-0.5, -5, -0.5), mglVec(0, 1, 0))
	v, ok := store.Trace(hit)
	require.True(t, ok)
	assert.Equal(t, voxel.Voxel{R: 1, G: 1, B: 1}, v)

	miss := geom.NewRay(mglVec(0.5, -5, 0.5), mglVec(0, 1, 0))
	_, ok = store.Trace(miss)
	assert.False(t, ok)
}

func TestDDAOctantColorMap(t *testing.T) {
	bb := unitBB()
	gen := fixedGen{voxels: map[geom.Vec3i]voxel.Voxel{}}
	for x := int32(0); x <= 1; x++ {
		for y := int32(0); y <= 1; y++ {
			for z := int32(0); z <= 1; z++ {
				gen.voxels[geom.Vec3i{x - 1, y - 1, z - 1}] = voxel.Voxel{R: uint8(x), G: uint8(y), B: uint8(z)}
			}
		}
	}
	store := New(gen, bb)

	cases := []struct {
		origin, dir mglVec3
		want        voxel.Voxel
	}{
		{mglVec(-0.5, -5, -0.5), mglVec(0, 1, 0), voxel.Voxel{0, 0, 0}},
		{mglVec(-5, -0.5, 0.5), mglVec(1, 0, 0), voxel.Voxel{0, 0, 1}},
		{mglVec(-0.5, 5, -0.5), mglVec(0, -1, 0), voxel.Voxel{0, 1, 0}},
		{mglVec(5, -0.5, -0.5), mglVec(-1, 0, 0), voxel.Voxel{1, 0, 0}},
		{mglVec(0.5, 0.5, -5), mglVec(0, 0, 1), voxel.Voxel{1, 1, 0}},
		{mglVec(0.5, 0.5, 5), mglVec(0, 0, -1), voxel.Voxel{1, 1, 1}},
	}
	for _, c := range cases {
		v, ok := store.Trace(geom.NewRay(c.origin, c.dir))
		require.True(t, ok)
		assert.Equal(t, c.want, v)
	}
}
