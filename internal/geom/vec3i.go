package geom

import "github.com/go-gl/mathgl/mgl32"

// Vec3i is an integer lattice point / extent triple. mgl32 has no integer
// vector type, so voxel-space coordinates get their own small value type.
type Vec3i [3]int32

func NewVec3i(x, y, z int32) Vec3i { return Vec3i{x, y, z} }

func (v Vec3i) X() int32 { return v[0] }
func (v Vec3i) Y() int32 { return v[1] }
func (v Vec3i) Z() int32 { return v[2] }

func (v Vec3i) Add(o Vec3i) Vec3i { return Vec3i{v[0] + o[0], v[1] + o[1], v[2] + o[2]} }
func (v Vec3i) Sub(o Vec3i) Vec3i { return Vec3i{v[0] - o[0], v[1] - o[1], v[2] - o[2]} }

// ToFloat converts to an mgl32.Vec3 for use in ray/plane math.
func (v Vec3i) ToFloat() mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

func maxInt32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
