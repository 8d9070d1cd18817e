package geom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPanicsOnNonPositiveExtents(t *testing.T) {
	assert.Panics(t, func() { New(Vec3i{}, Vec3i{0, 1, 1}) })
	assert.Panics(t, func() { New(Vec3i{}, Vec3i{1, -1, 1}) })
}

func TestIterVisitsExactlyWidthHeightLength(t *testing.T) {
	bb := New(Vec3i{1, -2, 3}, Vec3i{2, 3, 1})
	seen := map[Vec3i]bool{}
	count := 0
	bb.Iter(func(p Vec3i) bool {
		require.False(t, seen[p], "duplicate point %v", p)
		seen[p] = true
		count++
		return true
	})
	assert.EqualValues(t, bb.Count(), count)
	assert.EqualValues(t, int64(bb.Width())*int64(bb.Height())*int64(bb.Length()), count)
}

func TestOctantHalvesExtentsAndShiftsOrigin(t *testing.T) {
	bb := New(Vec3i{0, 0, 0}, Vec3i{4, 4, 4})
	for i := 0; i < 8; i++ {
		sub := bb.Octant(i)
		assert.Equal(t, Vec3i{2, 2, 2}, sub.Extents)
		for axis := 0; axis < 3; axis++ {
			bit := (i >> uint(axis)) & 1
			want := int32(2*bit-1) * sub.Extents[axis]
			assert.Equal(t, want, sub.Origin[axis]-bb.Origin[axis])
		}
	}
}

func TestIndexOfInsideVsOutside(t *testing.T) {
	bb := New(Vec3i{0, 0, 0}, Vec3i{2, 2, 2})
	bb.Iter(func(p Vec3i) bool {
		idx, ok := bb.IndexOf(p)
		assert.True(t, ok, "point %v should be inside", p)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 8)
		return true
	})

	_, ok := bb.IndexOf(Vec3i{5, 5, 5})
	assert.False(t, ok)
}

func TestUnitLeafBoundaryCorners(t *testing.T) {
	bb := New(Vec3i{0, 0, 0}, Vec3i{1, 1, 1})
	assert.True(t, bb.IsUnit())

	idx, ok := bb.IndexOf(Vec3i{0, 0, 0})
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = bb.IndexOf(Vec3i{1, 1, 1})
	require.True(t, ok)
	assert.Equal(t, 7, idx)
}

func TestNextPow2Doubling(t *testing.T) {
	bb := New(Vec3i{0, 0, 0}, Vec3i{4, 4, 4})
	padded := bb.NextPow2()
	assert.EqualValues(t, 8, padded.Extents.X())

	bb2 := New(Vec3i{0, 0, 0}, Vec3i{5, 1, 1})
	padded2 := bb2.NextPow2()
	assert.EqualValues(t, 8, padded2.Extents.X())
}

func TestIntersectionSlab(t *testing.T) {
	bb := New(Vec3i{0, 0, 0}, Vec3i{1, 1, 1})
	r := NewRay(mgl32.Vec3{0, -5, 0}, mgl32.Vec3{0, 1, 0})
	enter, exit, ok := bb.Intersection(r, 0.01, float32(1e9))
	require.True(t, ok)
	assert.InDelta(t, 4, enter, 1e-4)
	assert.InDelta(t, 6, exit, 1e-4)

	rMiss := NewRay(mgl32.Vec3{10, -5, 10}, mgl32.Vec3{0, 1, 0})
	_, _, ok = bb.Intersection(rMiss, 0.01, float32(1e9))
	assert.False(t, ok)
}

func TestPlaneIntersectionsOnlyAheadAndInBounds(t *testing.T) {
	bb := New(Vec3i{0, 0, 0}, Vec3i{2, 2, 2})
	r := NewRay(mgl32.Vec3{-5, 0, 0}, mgl32.Vec3{1, 0, 0})
	crossings := bb.PlaneIntersections(r)

	assert.True(t, crossings[0].Ok)
	assert.InDelta(t, 5, crossings[0].Dist, 1e-4)
	assert.False(t, crossings[1].Ok)
	assert.False(t, crossings[2].Ok)
}
