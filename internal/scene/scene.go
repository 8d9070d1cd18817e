// Package scene provides the capability both spatial backends are traced
// through, and a single construction entry point that picks between
// them. Grounded on the teacher's voxelrt/rt/core/scene.go — one type
// owns construction and exposes the capability the render driver needs —
// generalized here to two backends behind one interface instead of one
// concrete voxel-object type, since this spec has no multi-object TLAS.
package scene

import (
	"fmt"

	"github.com/COP4520Team1/voxel-ray-tracer/internal/denseworld"
	"github.com/COP4520Team1/voxel-ray-tracer/internal/geom"
	"github.com/COP4520Team1/voxel-ray-tracer/internal/sparseworld"
	"github.com/COP4520Team1/voxel-ray-tracer/internal/voxel"
)

// Backend selects the spatial structure a Scene is built over.
type Backend string

const (
	Sparse Backend = "sparse"
	Dense  Backend = "dense"
)

// Generator is the lookup contract the scene asks to populate itself.
type Generator interface {
	Lookup(pos geom.Vec3i) (voxel.Voxel, bool)
}

// Scene traces a ray against whichever backend it was built from. debug
// requests edge-debug coloring where the backend supports it; the dense
// backend has no notion of octant edges and ignores it.
type Scene interface {
	Trace(r geom.Ray, debug bool) (voxel.Voxel, bool)
}

// Build constructs a Scene over bb by exhausting gen, using backend's
// spatial structure.
func Build(backend Backend, gen Generator, bb geom.IAabb) (Scene, error) {
	switch backend {
	case Sparse:
		return sparseScene{tree: sparseworld.FromVoxels(gen, bb)}, nil
	case Dense:
		return denseScene{store: denseworld.New(gen, bb)}, nil
	default:
		return nil, fmt.Errorf("scene: unknown backend %q", backend)
	}
}

type sparseScene struct {
	tree *sparseworld.Octree
}

func (s sparseScene) Trace(r geom.Ray, debug bool) (voxel.Voxel, bool) {
	if debug {
		return s.tree.DebugTrace(r)
	}
	return s.tree.Trace(r)
}

type denseScene struct {
	store *denseworld.Store
}

func (d denseScene) Trace(r geom.Ray, _ bool) (voxel.Voxel, bool) {
	return d.store.Trace(r)
}
