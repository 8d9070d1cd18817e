// Package voxel defines the leaf datum stored by both scene backends.
package voxel

// Voxel is a single opaque leaf cell: an 8-bit-per-channel color. Equality
// is structural, so a plain comparison (or testify's assert.Equal) is
// enough to compare two samples.
type Voxel struct {
	R, G, B uint8
}

// Pack encodes the voxel as a framebuffer word: R<<24 | G<<16 | B<<8 | A,
// with A fixed at 0xFF for any hit pixel (an un-hit pixel is the zero
// word, never produced by Pack).
func (v Voxel) Pack() uint32 {
	return uint32(v.R)<<24 | uint32(v.G)<<16 | uint32(v.B)<<8 | 0xFF
}
