// Package camera implements the pinhole projection: a fixed viewport
// basis precomputed once at construction, and a per-pixel ray generator.
// Grounded on the teacher's voxelrt/rt/core/camera.go basis-vector style
// (GetForward/GetRight/GetViewMatrix), adapted from a yaw/pitch live
// camera to a fixed lookfrom/lookat pinhole with no view matrix at all —
// get_ray composes the pixel's world position directly.
package camera

import (
	"math"

	"github.com/COP4520Team1/voxel-ray-tracer/internal/geom"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is an immutable pinhole projection over a fixed resolution.
type Camera struct {
	lookfrom mgl32.Vec3
	pixel00  mgl32.Vec3
	deltaU   mgl32.Vec3
	deltaV   mgl32.Vec3
}

// New precomputes the camera basis and per-pixel deltas. vfov is in
// radians. up must not be parallel to (lookfrom - lookat).
func New(width, height int, vfov float32, lookfrom, lookat, up mgl32.Vec3, focusDist float32) *Camera {
	w := lookfrom.Sub(lookat).Normalize()
	u := up.Cross(w).Normalize()
	v := w.Cross(u)

	viewportHeight := 2 * float32(math.Tan(float64(vfov)/2)) * focusDist
	viewportWidth := viewportHeight * float32(width) / float32(height)

	viewportU := u.Mul(viewportWidth)
	viewportV := v.Mul(-viewportHeight)

	deltaU := viewportU.Mul(1 / float32(width))
	deltaV := viewportV.Mul(1 / float32(height))

	viewportOrigin := lookfrom.
		Sub(w.Mul(focusDist)).
		Sub(viewportU.Mul(0.5)).
		Sub(viewportV.Mul(0.5))
	pixel00 := viewportOrigin.Add(deltaU.Add(deltaV).Mul(0.5))

	return &Camera{
		lookfrom: lookfrom,
		pixel00:  pixel00,
		deltaU:   deltaU,
		deltaV:   deltaV,
	}
}

// GetRay returns the normalized ray from lookfrom through pixel (i,j).
func (c *Camera) GetRay(i, j int) geom.Ray {
	target := c.pixel00.
		Add(c.deltaU.Mul(float32(i))).
		Add(c.deltaV.Mul(float32(j)))
	return geom.NewRay(c.lookfrom, target.Sub(c.lookfrom))
}
