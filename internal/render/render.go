// Package render is the driver that ties generator, scene, camera, and
// framebuffer together into one render pass. The parallel pixel loop is
// grounded on particles_ecs.go's job-channel worker pool, simplified
// because pixel writes are disjoint by (x,y) and need no result
// aggregation — internal/framebuffer.Each already owns the goroutine
// fan-out, so this package just supplies the per-pixel work function.
package render

import (
	"fmt"
	"math"
	"time"

	"github.com/COP4520Team1/voxel-ray-tracer/internal/camera"
	"github.com/COP4520Team1/voxel-ray-tracer/internal/config"
	"github.com/COP4520Team1/voxel-ray-tracer/internal/framebuffer"
	"github.com/COP4520Team1/voxel-ray-tracer/internal/geom"
	"github.com/COP4520Team1/voxel-ray-tracer/internal/logging"
	"github.com/COP4520Team1/voxel-ray-tracer/internal/noise"
	"github.com/COP4520Team1/voxel-ray-tracer/internal/scene"
	"github.com/COP4520Team1/voxel-ray-tracer/internal/voxel"
	"github.com/google/uuid"
)

const (
	defaultVfovDegrees = 90
	defaultFocusDist   = 10
)

// Run builds the generator, scene, and camera from cfg, then renders
// every pixel in parallel into a fresh Framebuffer.
func Run(cfg config.Config, log logging.Logger) (*framebuffer.Framebuffer, error) {
	jobID := uuid.NewString()
	start := time.Now()

	seed := cfg.Seed
	if !cfg.HasSeed {
		seed = uint32(time.Now().UnixNano())
	}
	log.Infof("render[%s]: backend=%s size=%d seed=%d res=%dx%d debug=%v", jobID, cfg.Backend, cfg.Size, seed, cfg.Width, cfg.Height, cfg.Debug)

	gen := noise.NewHeightField(seed)

	bb := geom.New(geom.Vec3i{0, 0, 0}, geom.Vec3i{cfg.Size, cfg.Size, cfg.Size})

	sceneBackend := scene.Dense
	if cfg.Backend == config.BackendSparse {
		sceneBackend = scene.Sparse
	}
	sc, err := scene.Build(sceneBackend, gen, bb)
	if err != nil {
		return nil, fmt.Errorf("render[%s]: build scene: %w", jobID, err)
	}
	log.Debugf("render[%s]: scene built in %s", jobID, time.Since(start))

	lookfrom := geom.Vec3i(cfg.ResolvedCameraPos()).ToFloat()
	cam := camera.New(
		cfg.Width, cfg.Height,
		float32(defaultVfovDegrees*math.Pi/180),
		lookfrom,
		geom.Vec3i{0, 0, 0}.ToFloat(),
		geom.Vec3i{0, 1, 0}.ToFloat(),
		defaultFocusDist,
	)

	fb := framebuffer.New(cfg.Width, cfg.Height)

	fb.Each(func(x, y int) {
		ray := cam.GetRay(x, y)
		v, ok := sc.Trace(ray, cfg.Debug)
		if ok {
			fb.PixelAt(x, y).Store(pack(v))
		}
	})

	log.Infof("render[%s]: done in %s", jobID, time.Since(start))
	return fb, nil
}

func pack(v voxel.Voxel) uint32 {
	return v.Pack()
}
