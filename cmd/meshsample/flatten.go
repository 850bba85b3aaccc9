package main

import (
	"context"
	"fmt"
	"os"

	"github.com/philipparndt/meshsample/pkg/meshio"
	"github.com/spf13/cobra"
)

var (
	flattenOut  string
	flattenName string
	flattenSTL  bool
)

var flattenCmd = &cobra.Command{
	Use:   "flatten [file]",
	Short: "Project a mesh onto the XY plane without resampling",
	Long:  "Set every z coordinate to zero and write mesh.vert, mesh.triv and an OBJ file, keeping vertices and triangles as they are.",
	Args:  cobra.ExactArgs(1),
	Run:   runFlatten,
}

func init() {
	rootCmd.AddCommand(flattenCmd)

	flattenCmd.Flags().StringVarP(&flattenOut, "out", "o", ".", "Output directory")
	flattenCmd.Flags().StringVar(&flattenName, "name", "", "Base name of the OBJ/STL file (default: input name)")
	flattenCmd.Flags().BoolVar(&flattenSTL, "stl", false, "Also write a binary STL file")
}

func runFlatten(cmd *cobra.Command, args []string) {
	filename := args[0]

	m, err := meshio.Load(context.Background(), filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading mesh: %v\n", err)
		os.Exit(1)
	}

	out := meshio.DefaultOutput()
	out.Dir = flattenOut
	out.Name = flattenName
	out.STL = flattenSTL

	written, err := meshio.WriteAll(out, m.Flatten(), meshio.Artifacts{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Flattened %d vertices, %d triangles\n", m.VertexCount(), m.TriangleCount())
	for _, path := range written {
		fmt.Printf("  %s\n", path)
	}
}
