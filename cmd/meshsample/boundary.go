package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/philipparndt/meshsample/pkg/geometry"
	"github.com/philipparndt/meshsample/pkg/mesh"
	"github.com/philipparndt/meshsample/pkg/meshio"
	"github.com/philipparndt/meshsample/pkg/remesh"
	"github.com/spf13/cobra"
)

var (
	boundaryTopFace bool
	boundaryCos     float64
	boundarySpacing float64
	boundaryGeoJSON string
)

var boundaryCmd = &cobra.Command{
	Use:   "boundary [file]",
	Short: "Trace and measure the boundary loop of a mesh",
	Long: `Trace the boundary loop the resampler would use and report how it was
found, its length, enclosed area and a best-fit circle. Closed or
non-manifold inputs fall back to the convex hull.`,
	Args: cobra.ExactArgs(1),
	Run:  runBoundary,
}

func init() {
	rootCmd.AddCommand(boundaryCmd)

	boundaryCmd.Flags().BoolVar(&boundaryTopFace, "top-face", false, "Trace the boundary of the upward facing faces")
	boundaryCmd.Flags().Float64Var(&boundaryCos, "cos", remesh.DefaultCosThreshold, "Cosine threshold of the top-face filter")
	boundaryCmd.Flags().Float64VarP(&boundarySpacing, "spacing", "s", remesh.DefaultSpacing, "Spacing used to report the resampled chain length")
	boundaryCmd.Flags().StringVar(&boundaryGeoJSON, "geojson", "", "Write the traced loop to this GeoJSON file")
}

func runBoundary(cmd *cobra.Command, args []string) {
	filename := args[0]

	m, err := meshio.Load(context.Background(), filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading mesh: %v\n", err)
		os.Exit(1)
	}

	work := m
	if boundaryTopFace {
		top, err := remesh.FilterTopFace(m, remesh.UpAxis, boundaryCos)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error filtering top face: %v\n", err)
			os.Exit(1)
		}
		work = top.Mesh
	}

	points := work.Planar()
	trace := remesh.TraceBoundary(points, work.Triangles)
	loop := make([]orb.Point, len(trace.Loop))
	for i, v := range trace.Loop {
		loop[i] = points[v]
	}
	poly := remesh.NewPolygon(loop)
	edges := remesh.CountEdges(work.Triangles)

	fmt.Println("Boundary")
	fmt.Println("========")
	fmt.Printf("File: %s\n", filename)
	fmt.Printf("Triangles: %d\n", len(work.Triangles))
	fmt.Printf("Boundary edges: %d (%d non-manifold edges)\n", len(edges.BoundaryEdges()), len(edges.NonManifold()))
	fmt.Printf("Result: %s\n", trace.Kind)
	if trace.Reason != nil {
		fmt.Printf("  Reason: %v\n", trace.Reason)
	}
	fmt.Printf("Loop points: %d\n", len(loop))
	fmt.Printf("Perimeter: %.6f units\n", poly.Perimeter())
	fmt.Printf("Area: %.6f square units\n", poly.Area())
	fmt.Printf("Resampled chain at %.6f: %d points\n", boundarySpacing, len(remesh.ResampleBoundary(loop, boundarySpacing)))

	if circle, err := geometry.FitCircle(loop); err == nil {
		fmt.Println("\nBest-fit circle:")
		fmt.Printf("  Center: (%.6f, %.6f)\n", circle.Center[0], circle.Center[1])
		fmt.Printf("  Radius: %.6f units\n", circle.Radius)
		fmt.Printf("  Deviation: %.6f units\n", circle.StdDev)
	} else if !errors.Is(err, geometry.ErrCollinear) {
		fmt.Printf("\nBest-fit circle: %v\n", err)
	}

	if boundaryGeoJSON != "" {
		if err := writeLoopGeoJSON(boundaryGeoJSON, work.Name, loop); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing GeoJSON: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nWritten: %s\n", boundaryGeoJSON)
	}
}

func writeLoopGeoJSON(path, name string, loop []orb.Point) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := meshio.WriteGeoJSON(f, mesh.New(name), loop); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
