package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/philipparndt/meshsample/version"
	"github.com/spf13/cobra"
)

var quiet bool

var rootCmd = &cobra.Command{
	Use:   "meshsample",
	Short: "Boundary-aware resampling of planar and top-face triangle meshes",
	Long: `meshsample rebuilds a triangle mesh with an exact number of vertices.
It traces the boundary of the input (or of its upward facing top face),
resamples it at a fixed spacing, fills the interior with farthest point
samples and retriangulates the result inside the original silhouette.

Inputs may be STL, OBJ, OFF or OpenSCAD files. Results are written as
mesh.vert / mesh.triv plus an OBJ file for viewers.`,
	Version: version.GetVersion(),
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress logging")
}

// newLogger returns the stderr progress logger, or a silent one with --quiet
func newLogger() *log.Logger {
	if quiet {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, "", log.LstdFlags)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
