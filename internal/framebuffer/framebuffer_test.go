package framebuffer

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAllCellsZero(t *testing.T) {
	fb := New(4, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, uint32(0), fb.PixelAt(x, y).Load())
		}
	}
}

func TestEachVisitsEveryCellExactlyOnce(t *testing.T) {
	fb := New(37, 23)
	var count atomic.Int64
	fb.Each(func(x, y int) {
		fb.PixelAt(x, y).Store(1)
		count.Add(1)
	})
	assert.EqualValues(t, 37*23, count.Load())
	for y := 0; y < 23; y++ {
		for x := 0; x < 37; x++ {
			assert.Equal(t, uint32(1), fb.PixelAt(x, y).Load())
		}
	}
}

func TestEachHandlesFewerRowsThanWorkers(t *testing.T) {
	fb := New(10, 1)
	var count atomic.Int64
	fb.Each(func(x, y int) {
		count.Add(1)
	})
	assert.EqualValues(t, 10, count.Load())
}
