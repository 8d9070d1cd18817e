// Package noise implements the deterministic 2D coherent-noise field that
// backs the voxel generator. No coherent-noise library exists anywhere in
// the example pack (a deliberate search turned up only WebP's image
// denoising and NoiseTorch's RNNoise audio filter, neither a usable
// primitive here), so this is implemented directly against the classic
// Perlin noise algorithm.
package noise

import "math/rand"

const permSize = 256

// perlin2D is a classic (1985) 2D Perlin noise field: a seeded
// permutation table plus eight fixed gradient directions, smoothed with
// a quintic fade curve.
type perlin2D struct {
	perm [permSize * 2]int
}

var gradients2D = [8][2]float32{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
}

func newPerlin2D(seed uint32) *perlin2D {
	p := &perlin2D{}
	table := make([]int, permSize)
	for i := range table {
		table[i] = i
	}

	rng := rand.New(rand.NewSource(int64(seed)))
	rng.Shuffle(permSize, func(i, j int) {
		table[i], table[j] = table[j], table[i]
	})

	for i := 0; i < permSize; i++ {
		p.perm[i] = table[i]
		p.perm[i+permSize] = table[i]
	}
	return p
}

func fade(t float32) float32 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float32) float32 {
	return a + t*(b-a)
}

func (p *perlin2D) gradAt(hash int) [2]float32 {
	return gradients2D[hash&7]
}

// eval returns noise in [-1, 1] at (x, y).
func (p *perlin2D) eval(x, y float32) float32 {
	xi := int(floor32(x)) & (permSize - 1)
	yi := int(floor32(y)) & (permSize - 1)

	xf := x - floor32(x)
	yf := y - floor32(y)

	u := fade(xf)
	v := fade(yf)

	aa := p.perm[p.perm[xi]+yi]
	ab := p.perm[p.perm[xi]+yi+1]
	ba := p.perm[p.perm[xi+1]+yi]
	bb := p.perm[p.perm[xi+1]+yi+1]

	gradDot := func(hash int, dx, dy float32) float32 {
		g := p.gradAt(hash)
		return g[0]*dx + g[1]*dy
	}

	n00 := gradDot(aa, xf, yf)
	n10 := gradDot(ba, xf-1, yf)
	n01 := gradDot(ab, xf, yf-1)
	n11 := gradDot(bb, xf-1, yf-1)

	x1 := lerp(u, n00, n10)
	x2 := lerp(u, n01, n11)
	return lerp(v, x1, x2)
}

func floor32(v float32) float32 {
	i := int32(v)
	if v < 0 && float32(i) != v {
		i--
	}
	return float32(i)
}
