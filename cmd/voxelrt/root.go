// Command voxelrt renders a procedurally generated voxel height field to
// a PNG file. Cobra wiring and the *VarP flag style are grounded on
// Seinarukiro2-tgimg-core's cli/cmd/root.go and cli/cmd/build.go.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagBackend  string
	flagSize     int32
	flagPosition string
	flagSeed     uint32
	flagOut      string
	flagWidth    int
	flagHeight   int
	flagDebug    bool
)

var rootCmd = &cobra.Command{
	Use:   "voxelrt",
	Short: "Offline CPU ray tracer for procedurally generated voxel scenes",
	Long: `voxelrt renders a height-field voxel world, traced either through a
sparse octree or a dense DDA grid, and writes the result as a PNG.`,
	RunE: runRender,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// voxelrt's own -h means --height; give up the default --help shorthand
	// by registering it ourselves first, with no shorthand, before Cobra
	// would otherwise claim -h for it.
	rootCmd.Flags().Bool("help", false, "help for voxelrt")

	rootCmd.Flags().StringVarP(&flagBackend, "backend", "b", "sparse", "spatial structure: sparse|dense")
	rootCmd.Flags().Int32VarP(&flagSize, "size", "s", 200, "half-extent of the world's bounding box")
	rootCmd.Flags().StringVarP(&flagPosition, "position", "p", "", "camera position x,y,z (default size,size,size)")
	rootCmd.Flags().Uint32VarP(&flagSeed, "seed", "r", 0, "world seed (default random)")
	rootCmd.Flags().StringVarP(&flagOut, "out", "o", "render.png", "output PNG path")
	rootCmd.Flags().IntVarP(&flagWidth, "width", "w", 7680, "output width in pixels")
	rootCmd.Flags().IntVarP(&flagHeight, "height", "h", 4320, "output height in pixels")
	rootCmd.Flags().BoolVarP(&flagDebug, "debug", "d", false, "enable octree edge-debug rendering")
}

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "voxelrt:", err)
		os.Exit(1)
	}
}
