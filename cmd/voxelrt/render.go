package main

import (
	"fmt"

	"github.com/COP4520Team1/voxel-ray-tracer/internal/config"
	"github.com/COP4520Team1/voxel-ray-tracer/internal/imageexport"
	"github.com/COP4520Team1/voxel-ray-tracer/internal/logging"
	"github.com/COP4520Team1/voxel-ray-tracer/internal/render"
	"github.com/spf13/cobra"
)

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	log := logging.NewDefaultLogger("voxelrt", cfg.Debug)

	fb, err := render.Run(cfg, log)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if err := imageexport.Export(fb, cfg.Out); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	log.Infof("wrote %s (%dx%d)", cfg.Out, cfg.Width, cfg.Height)
	return nil
}

func buildConfig(cmd *cobra.Command) (config.Config, error) {
	backend, err := config.ParseBackend(flagBackend)
	if err != nil {
		return config.Config{}, err
	}

	cfg := config.Config{
		Backend: backend,
		Size:    flagSize,
		Out:     flagOut,
		Width:   flagWidth,
		Height:  flagHeight,
		Debug:   flagDebug,
	}

	if flagPosition != "" {
		pos, err := config.ParsePosition(flagPosition)
		if err != nil {
			return config.Config{}, err
		}
		cfg.CameraPos = pos
		cfg.HasCameraPos = true
	}

	if cmd.Flags().Changed("seed") {
		cfg.Seed = flagSeed
		cfg.HasSeed = true
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
