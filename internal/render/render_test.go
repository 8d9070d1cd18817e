package render

import (
	"testing"

	"github.com/COP4520Team1/voxel-ray-tracer/internal/config"
	"github.com/COP4520Team1/voxel-ray-tracer/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseConfig() config.Config {
	return config.Config{
		Backend: config.BackendSparse,
		Size:    8,
		Seed:    1,
		HasSeed: true,
		Width:   16,
		Height:  16,
	}
}

func TestRunProducesRightSizedFramebuffer(t *testing.T) {
	fb, err := Run(baseConfig(), logging.NewNopLogger())
	require.NoError(t, err)
	assert.Equal(t, 16, fb.Width)
	assert.Equal(t, 16, fb.Height)
}

func TestRunIsDeterministicForFixedSeed(t *testing.T) {
	a, err := Run(baseConfig(), logging.NewNopLogger())
	require.NoError(t, err)
	b, err := Run(baseConfig(), logging.NewNopLogger())
	require.NoError(t, err)

	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			assert.Equal(t, a.PixelAt(x, y).Load(), b.PixelAt(x, y).Load())
		}
	}
}

func TestRunBothBackendsAgree(t *testing.T) {
	sparseCfg := baseConfig()
	sparseCfg.Backend = config.BackendSparse
	denseCfg := baseConfig()
	denseCfg.Backend = config.BackendDense

	sparseFB, err := Run(sparseCfg, logging.NewNopLogger())
	require.NoError(t, err)
	denseFB, err := Run(denseCfg, logging.NewNopLogger())
	require.NoError(t, err)

	for y := 0; y < sparseFB.Height; y++ {
		for x := 0; x < sparseFB.Width; x++ {
			assert.Equal(t, sparseFB.PixelAt(x, y).Load(), denseFB.PixelAt(x, y).Load())
		}
	}
}
