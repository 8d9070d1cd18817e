package sparseworld

import (
	"sort"

	"github.com/COP4520Team1/voxel-ray-tracer/internal/geom"
	"github.com/COP4520Team1/voxel-ray-tracer/internal/voxel"
	"github.com/go-gl/mathgl/mgl32"
)

const tMin = 0.01
const tMax = float32(1e30)

// treeShift moves a ray into the octree's own coordinates. IndexOf files
// lattice point p under the cell (p-1, p] (a coordinate on a center plane
// counts as the negative half), while world space and the dense store put
// p in the cell [p, p+1); subtracting one unit on every axis lines the
// two up, so both backends find the same voxel along a ray.
var treeShift = mgl32.Vec3{1, 1, 1}

// Trace is the front-to-back octant traversal of spec.md §4.3: enter the
// root at its slab intersection, then descend visiting octants in the
// order the ray actually crosses them, using center-plane crossing
// distances to decide when to step to the next octant.
func (o *Octree) Trace(r geom.Ray) (voxel.Voxel, bool) {
	r.Origin = r.Origin.Sub(treeShift)
	enter, _, ok := o.bb.Intersection(r, tMin, tMax)
	if !ok {
		return voxel.Voxel{}, false
	}
	entry := geom.Ray{Origin: r.At(enter), Dir: r.Dir}
	return o.traverse(0, o.bb, entry)
}

// DebugTrace mirrors Trace but paints octant boundaries instead of
// resolving to the first hit voxel: a branch whose box the ray passes
// near the edge of returns a Pearson-hash color derived from the box's
// origin, and any leaf hit returns black.
func (o *Octree) DebugTrace(r geom.Ray) (voxel.Voxel, bool) {
	r.Origin = r.Origin.Sub(treeShift)
	enter, _, ok := o.bb.Intersection(r, tMin, tMax)
	if !ok {
		return voxel.Voxel{}, false
	}
	entry := geom.Ray{Origin: r.At(enter), Dir: r.Dir}
	return o.traverseDebug(0, o.bb, entry)
}

// traverse walks one node of the tree. ray.Origin is this node's entry
// point; it is fixed for the lifetime of this call — note that the
// "outer ray origin" the plane-crossing advance uses below is this
// ray.Origin, not the ever-mutating local start, and not the original
// ray that entered the whole tree three stack frames up.
func (o *Octree) traverse(nodeIdx int32, box geom.IAabb, ray geom.Ray) (voxel.Voxel, bool) {
	n := &o.nodes[nodeIdx]

	idx := initialOctant(ray.Origin, box.Origin)
	tests := box.PlaneIntersections(ray)
	dirs := sortedCrossingAxes(tests)

	start := ray.Origin
	next := 0

	for {
		if n.kind == kindBranch {
			if child := n.children[idx]; child != 0 {
				childRay := geom.Ray{Origin: start, Dir: ray.Dir}
				if v, ok := o.traverse(child, box.Octant(idx), childRay); ok {
					return v, true
				}
			}
		} else if n.occupied[idx] {
			return n.voxels[idx], true
		}

		if next >= len(dirs) {
			return voxel.Voxel{}, false
		}
		axis := dirs[next]
		next++
		idx ^= 1 << uint(axis)
		start = ray.Origin.Add(ray.Dir.Mul(tests[axis].Dist))
	}
}

func (o *Octree) traverseDebug(nodeIdx int32, box geom.IAabb, ray geom.Ray) (voxel.Voxel, bool) {
	n := &o.nodes[nodeIdx]

	if n.kind == kindBranch && box.IntersectsEdge(ray) {
		return pearsonColor(box.Origin), true
	}

	idx := initialOctant(ray.Origin, box.Origin)
	tests := box.PlaneIntersections(ray)
	dirs := sortedCrossingAxes(tests)

	start := ray.Origin
	next := 0

	for {
		if n.kind == kindBranch {
			if child := n.children[idx]; child != 0 {
				childRay := geom.Ray{Origin: start, Dir: ray.Dir}
				if v, ok := o.traverseDebug(child, box.Octant(idx), childRay); ok {
					return v, true
				}
			}
		} else if n.occupied[idx] {
			return voxel.Voxel{}, true // black: the zero-value voxel
		}

		if next >= len(dirs) {
			return voxel.Voxel{}, false
		}
		axis := dirs[next]
		next++
		idx ^= 1 << uint(axis)
		start = ray.Origin.Add(ray.Dir.Mul(tests[axis].Dist))
	}
}

// initialOctant packs the sign bits of (at - origin): bit 1 per axis iff
// the component is strictly positive, matching the center-inclusion rule
// used throughout this package.
func initialOctant(at mgl32.Vec3, origin geom.Vec3i) int {
	o := origin.ToFloat()
	idx := 0
	for axis := 0; axis < 3; axis++ {
		if at[axis]-o[axis] > 0 {
			idx |= 1 << uint(axis)
		}
	}
	return idx
}

// sortedCrossingAxes returns the axes with a valid plane crossing, sorted
// by ascending distance — the ordered list of octant-boundary crossings
// the ray makes inside this node, length 0 to 3.
func sortedCrossingAxes(tests [3]geom.PlaneCrossing) []int {
	axes := make([]int, 0, 3)
	for axis, t := range tests {
		if t.Ok {
			axes = append(axes, axis)
		}
	}
	sort.Slice(axes, func(i, j int) bool {
		return tests[axes[i]].Dist < tests[axes[j]].Dist
	})
	return axes
}
