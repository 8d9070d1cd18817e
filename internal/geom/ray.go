package geom

import "github.com/go-gl/mathgl/mgl32"

// Ray is a point of origin and a unit direction. Constructing a Ray with a
// zero-length direction is undefined, matching the reference: callers
// never pass one.
type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3
}

// NewRay normalizes dir before storing it. Every downstream distance
// computed against a Ray (plane crossings, DDA deltas) relies on Dir
// being unit length.
func NewRay(origin, dir mgl32.Vec3) Ray {
	return Ray{Origin: origin, Dir: dir.Normalize()}
}

// At returns the point origin + t*dir.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}
