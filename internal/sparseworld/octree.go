// Package sparseworld implements the sparse octree scene store: a
// fixed-extent, power-of-two cubic octree over signed voxel coordinates,
// with insertion, point lookup, and a front-to-back ray traversal driven
// by plane-crossing distances. Grounded on the teacher's arena-of-nodes,
// "zero means empty" slot-packing idiom in voxelrt/rt/volume/xbrickmap.go
// and the recursive-arena-append style of voxelrt/rt/bvh/builder.go,
// generalized from a sector/brick/atlas paging structure to a plain
// 8-ary tree over IAabb octants.
package sparseworld

import (
	"github.com/COP4520Team1/voxel-ray-tracer/internal/geom"
	"github.com/COP4520Team1/voxel-ray-tracer/internal/voxel"
)

// Generator is the lookup contract used to populate the tree.
type Generator interface {
	Lookup(pos geom.Vec3i) (voxel.Voxel, bool)
}

// nodeKind distinguishes a branch (routes to children) from a leaf (holds
// voxels directly). A branch is used whenever a node's box has side
// length >= 2; a leaf is used iff the box's extents are all 1.
type nodeKind uint8

const (
	kindBranch nodeKind = iota
	kindLeaf
)

// node is the tagged-variant octree node: both kinds carry eight slots.
// Branches carry child indices into the arena (0 = empty, the root is
// index 0 and is never itself reachable as a child, which is exactly the
// niche that makes 0 safe to use as "empty"). Leaves carry voxels
// directly.
type node struct {
	kind     nodeKind
	children [8]int32 // kindBranch
	voxels   [8]voxel.Voxel
	occupied [8]bool // kindLeaf
}

// Octree is a cubic, power-of-two-sided scene store: a single flat arena
// of nodes addressed by index, index 0 being the root.
type Octree struct {
	bb    geom.IAabb
	nodes []node
}

// New builds an empty octree whose root box is bb padded to the next
// power of two (spec.md §4.3's from_voxels pads first so arbitrary scene
// insert points always land inside a branch-addressable cube).
func New(bb geom.IAabb) *Octree {
	padded := bb.NextPow2()
	return &Octree{
		bb:    padded,
		nodes: []node{{kind: childKindFor(padded)}},
	}
}

func childKindFor(bb geom.IAabb) nodeKind {
	if bb.IsUnit() {
		return kindLeaf
	}
	return kindBranch
}

// FromVoxels builds an octree over bb by inserting every populated
// lattice point gen.Lookup reports.
func FromVoxels(gen Generator, bb geom.IAabb) *Octree {
	o := New(bb)
	bb.Iter(func(p geom.Vec3i) bool {
		if v, ok := gen.Lookup(p); ok {
			if !o.Insert(p, v) {
				panic("sparseworld: well-formed scene point rejected by padded root")
			}
		}
		return true
	})
	return o
}

// Insert writes v into the leaf slot covering pos, creating branches
// along the path as needed. Writing to an existing leaf slot overwrites
// it. Returns false (not inserted, tree unchanged) if pos lies outside
// the root's padded box.
func (o *Octree) Insert(pos geom.Vec3i, v voxel.Voxel) bool {
	nodeIdx := int32(0)
	box := o.bb

	for {
		idx, ok := box.IndexOf(pos)
		if !ok {
			return false
		}

		n := &o.nodes[nodeIdx]
		if n.kind == kindLeaf {
			n.voxels[idx] = v
			n.occupied[idx] = true
			return true
		}

		child := n.children[idx]
		childBox := box.Octant(idx)
		if child == 0 {
			o.nodes = append(o.nodes, node{kind: childKindFor(childBox)})
			child = int32(len(o.nodes) - 1)
			o.nodes[nodeIdx].children[idx] = child
		}

		nodeIdx = child
		box = childBox
	}
}

// Get returns the voxel at pos, or false if unvisited or out of bounds.
func (o *Octree) Get(pos geom.Vec3i) (voxel.Voxel, bool) {
	nodeIdx := int32(0)
	box := o.bb

	for {
		idx, ok := box.IndexOf(pos)
		if !ok {
			return voxel.Voxel{}, false
		}

		n := &o.nodes[nodeIdx]
		if n.kind == kindLeaf {
			if !n.occupied[idx] {
				return voxel.Voxel{}, false
			}
			return n.voxels[idx], true
		}

		child := n.children[idx]
		if child == 0 {
			return voxel.Voxel{}, false
		}
		nodeIdx = child
		box = box.Octant(idx)
	}
}
