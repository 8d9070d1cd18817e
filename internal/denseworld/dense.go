// Package denseworld implements the dense-grid ray caster: a flat array
// of optional voxels over an AABB, traced with 3D DDA (Amanatides & Woo).
// It exists as both a correctness baseline and a performance comparator
// for the sparse octree in internal/sparseworld.
package denseworld

import (
	"fmt"

	"github.com/COP4520Team1/voxel-ray-tracer/internal/geom"
	"github.com/COP4520Team1/voxel-ray-tracer/internal/voxel"
)

const epsilon = 1e-4

// Generator is the lookup contract the scene asks for a position's voxel.
type Generator interface {
	Lookup(pos geom.Vec3i) (voxel.Voxel, bool)
}

type cell struct {
	v  voxel.Voxel
	ok bool
}

// Store is a contiguous array of |box| optional voxels over bb. Index
// (x,y,z), measured from bb.Min() in the positive direction, maps to the
// linear position z + length*(y + height*x) — the same "iterate the
// bounding box, subtract min" indexing idiom the teacher's volume package
// uses over its bricks.
type Store struct {
	bb     geom.IAabb
	data   []cell
	w, h   int
	length int
}

// New populates a Store by iterating bb.Iter() in fixed order and asking
// gen.Lookup at each point. No compaction: every lattice point in bb gets
// a slot, hit or not.
func New(gen Generator, bb geom.IAabb) *Store {
	w := int(bb.Width())
	h := int(bb.Height())
	l := int(bb.Length())

	data := make([]cell, 0, w*h*l)
	bb.Iter(func(p geom.Vec3i) bool {
		v, ok := gen.Lookup(p)
		data = append(data, cell{v: v, ok: ok})
		return true
	})

	if len(data) != w*h*l {
		panic(fmt.Sprintf("denseworld: data length %d does not match box size %d", len(data), w*h*l))
	}

	return &Store{bb: bb, data: data, w: w, h: h, length: l}
}

func (s *Store) index(x, y, z int) (int, bool) {
	if x < 0 || y < 0 || z < 0 || x >= s.w || y >= s.h || z >= s.length {
		return 0, false
	}
	return z + s.length*(y+s.h*x), true
}

func (s *Store) at(x, y, z int) (voxel.Voxel, bool, bool) {
	idx, inBounds := s.index(x, y, z)
	if !inBounds {
		return voxel.Voxel{}, false, false
	}
	c := s.data[idx]
	return c.v, c.ok, true
}

// Trace runs 3D DDA from ray's intersection with bb, stepping one voxel
// at a time along the axis of least tmax until a populated cell is found
// or the index leaves the grid on any side.
func (s *Store) Trace(r geom.Ray) (voxel.Voxel, bool) {
	enter, _, ok := s.bb.Intersection(r, 0.01, float32(1e30))
	if !ok {
		return voxel.Voxel{}, false
	}

	origin := r.At(enter + epsilon)
	minF := s.bb.MinF()
	maxF := s.bb.MaxF()

	entry := origin.Sub(minF)

	var step [3]int
	var dirInv [3]float32
	for axis := 0; axis < 3; axis++ {
		d := r.Dir[axis]
		switch {
		case d > 0:
			step[axis] = 1
		case d < 0:
			step[axis] = -1
		default:
			step[axis] = 0
		}
		dirInv[axis] = abs32(1 / d)
	}

	size := maxF.Sub(minF)
	idx := [3]int{
		clampInt(int(floorf(entry[0])), 0, int(size[0])-1),
		clampInt(int(floorf(entry[1])), 0, int(size[1])-1),
		clampInt(int(floorf(entry[2])), 0, int(size[2])-1),
	}

	var tmax [3]float32
	for axis := 0; axis < 3; axis++ {
		if step[axis] == 0 {
			// A zero direction component never reaches a cell boundary on
			// this axis: dirInv is +Inf here, so the axis is never stepped.
			tmax[axis] = dirInv[axis]
			continue
		}
		stepPositive := float32(0)
		if step[axis] > 0 {
			stepPositive = 1
		}
		tmax[axis] = (float32(idx[axis]) - entry[axis] + stepPositive) / r.Dir[axis]
	}

	for {
		v, ok, inBounds := s.at(idx[0], idx[1], idx[2])
		if !inBounds {
			return voxel.Voxel{}, false
		}
		if ok {
			return v, true
		}

		axis := smallestTmaxAxis(tmax)
		idx[axis] += step[axis]
		tmax[axis] += dirInv[axis]
	}
}

// smallestTmaxAxis picks x only if its tmax is strictly below both others,
// else y if strictly below z, else z; a tie therefore goes to the later
// axis.
func smallestTmaxAxis(tmax [3]float32) int {
	if tmax[0] < tmax[1] && tmax[0] < tmax[2] {
		return 0
	}
	if tmax[1] < tmax[2] {
		return 1
	}
	return 2
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func floorf(v float32) float32 {
	i := int32(v)
	if v < 0 && float32(i) != v {
		i--
	}
	return float32(i)
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
