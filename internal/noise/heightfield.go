package noise

import (
	"github.com/COP4520Team1/voxel-ray-tracer/internal/geom"
	"github.com/COP4520Team1/voxel-ray-tracer/internal/voxel"
)

// Banding constants per spec: a height fraction h/H under 0.3 is water,
// under 0.6 is grass, under 0.8 is mountain, otherwise snow.
const (
	heightScale = 100 // H
	sampleScale = 1.0 / heightScale

	waterBand    = 0.3
	grassBand    = 0.6
	mountainBand = 0.8
)

var (
	colorWater    = voxel.Voxel{R: 0, G: 80, B: 200}
	colorGrass    = voxel.Voxel{R: 50, G: 170, B: 50}
	colorMountain = voxel.Voxel{R: 130, G: 130, B: 130}
	colorSnow     = voxel.Voxel{R: 240, G: 240, B: 255}
)

// HeightField is the voxel generator (spec.md §4.7): a deterministic 2D
// coherent-noise field sampled per (x,y), producing a column height that
// every (x,y,z) lookup tests against.
type HeightField struct {
	field *perlin2D
}

// NewHeightField builds a deterministic generator for seed. Two
// HeightFields built from the same seed produce identical lookups
// everywhere; different seeds are expected (not guaranteed) to diverge.
func NewHeightField(seed uint32) *HeightField {
	return &HeightField{field: newPerlin2D(seed)}
}

// Lookup evaluates the height field at pos.X/pos.Y and returns a voxel
// colored by height banding iff pos.Z falls within the resulting column,
// i.e. 0 <= pos.Z <= h.
func (g *HeightField) Lookup(pos geom.Vec3i) (voxel.Voxel, bool) {
	n := g.field.eval(float32(pos.X())*sampleScale, float32(pos.Y())*sampleScale)
	h := int32((n + 1) / 2 * heightScale)

	if pos.Z() < 0 || pos.Z() > h {
		return voxel.Voxel{}, false
	}

	frac := float32(h) / heightScale
	switch {
	case frac < waterBand:
		return colorWater, true
	case frac < grassBand:
		return colorGrass, true
	case frac < mountainBand:
		return colorMountain, true
	default:
		return colorSnow, true
	}
}
