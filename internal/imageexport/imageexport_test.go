package imageexport

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/COP4520Team1/voxel-ray-tracer/internal/framebuffer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportWritesCorrectDimensionsAndColors(t *testing.T) {
	fb := framebuffer.New(4, 2)
	fb.PixelAt(1, 0).Store(uint32(0xAA)<<24 | uint32(0xBB)<<16 | uint32(0xCC)<<8 | 0xFF)

	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")
	require.NoError(t, Export(fb, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())

	r, g, b, a := img.At(1, 0).RGBA()
	assert.Equal(t, uint32(0xAA), r>>8)
	assert.Equal(t, uint32(0xBB), g>>8)
	assert.Equal(t, uint32(0xCC), b>>8)
	assert.Equal(t, uint32(0xFF), a>>8)

	r, g, b, a = img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0), r)
	assert.Equal(t, uint32(0), a)
	_ = g
	_ = b
}

func TestExportFailsOnUnwritableDirectory(t *testing.T) {
	fb := framebuffer.New(1, 1)
	err := Export(fb, filepath.Join(string(os.PathSeparator), "no-such-dir-xyz", "out.png"))
	assert.Error(t, err)
}
