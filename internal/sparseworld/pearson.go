package sparseworld

import (
	"math/rand"

	"github.com/COP4520Team1/voxel-ray-tracer/internal/geom"
	"github.com/COP4520Team1/voxel-ray-tracer/internal/voxel"
)

// pearsonTable is a fixed permutation of 0..255 used by the classic
// Pearson hash below. Generated once from a constant seed so debug
// colors are stable across runs without needing to hand-transcribe a
// 256-entry table.
var pearsonTable = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = byte(i)
	}
	rand.New(rand.NewSource(0x5ea1)).Shuffle(len(t), func(i, j int) {
		t[i], t[j] = t[j], t[i]
	})
	return t
}()

func pearsonHash(data []byte, seed byte) byte {
	h := seed
	for _, b := range data {
		h = pearsonTable[h^b]
	}
	return h
}

// pearsonColor derives a stable debug color from a node's integer origin,
// hashing the same twelve bytes three times with different seeds to fill
// R, G, and B independently.
func pearsonColor(origin geom.Vec3i) voxel.Voxel {
	data := []byte{
		byte(origin.X() >> 24), byte(origin.X() >> 16), byte(origin.X() >> 8), byte(origin.X()),
		byte(origin.Y() >> 24), byte(origin.Y() >> 16), byte(origin.Y() >> 8), byte(origin.Y()),
		byte(origin.Z() >> 24), byte(origin.Z() >> 16), byte(origin.Z() >> 8), byte(origin.Z()),
	}
	return voxel.Voxel{
		R: pearsonHash(data, 0),
		G: pearsonHash(data, 1),
		B: pearsonHash(data, 2),
	}
}
