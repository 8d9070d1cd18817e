// Package imageexport writes a rendered Framebuffer to disk as a PNG.
// Encoding itself is explicitly out of scope for this spec (spec.md §1
// treats image encoding as an external collaborator), so this package
// leans entirely on the standard image/png encoder the way the teacher
// leans on stdlib image codecs wherever it isn't doing GPU texture work.
package imageexport

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/COP4520Team1/voxel-ray-tracer/internal/framebuffer"
)

// Export unpacks fb into an 8-bit RGBA raster and writes it to path as
// PNG. Un-hit cells (zero word) become fully transparent black.
func Export(fb *framebuffer.Framebuffer, path string) error {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			word := fb.PixelAt(x, y).Load()
			r, g, b, a := unpack(word)
			i := img.PixOffset(x, y)
			img.Pix[i+0] = r
			img.Pix[i+1] = g
			img.Pix[i+2] = b
			img.Pix[i+3] = a
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageexport: create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("imageexport: encode %s: %w", path, err)
	}
	return nil
}

func unpack(word uint32) (r, g, b, a uint8) {
	return uint8(word >> 24), uint8(word >> 16), uint8(word >> 8), uint8(word)
}
