package main

import (
	"context"
	"fmt"
	"os"

	"github.com/philipparndt/meshsample/pkg/analysis"
	"github.com/philipparndt/meshsample/pkg/meshio"
	"github.com/spf13/cobra"
)

var (
	infoEdges    int
	infoShortest bool
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about a mesh file",
	Long:  "Show vertex and triangle counts, bounding box, surface area, edge statistics and boundary/non-manifold edge counts.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().IntVarP(&infoEdges, "edges", "e", 0, "List the N longest edges")
	infoCmd.Flags().BoolVar(&infoShortest, "shortest", false, "List the shortest edges instead of the longest")
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	m, err := meshio.Load(context.Background(), filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading mesh: %v\n", err)
		os.Exit(1)
	}

	result := analysis.AnalyzeMesh(m)

	fmt.Println("Mesh Information")
	fmt.Println("================")
	if m.Name != "" {
		fmt.Printf("Name: %s\n", m.Name)
	}
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Printf("  Center: %s\n", analysis.FormatVector(result.BoundingBox.Center()))
	fmt.Printf("  Diagonal: %.6f units\n\n", result.BoundingBox.Diagonal())

	printMeshStatistics(result)

	if infoEdges > 0 {
		edges := analysis.FindLongestEdges(result, infoEdges)
		title := fmt.Sprintf("Top %d Longest Edges", len(edges))
		if infoShortest {
			edges = analysis.FindShortestEdges(result, infoEdges)
			title = fmt.Sprintf("Top %d Shortest Edges", len(edges))
		}

		fmt.Printf("\n%s\n", title)
		fmt.Printf("%-6s %-12s %-35s %-35s %-15s\n", "Index", "Vertices", "Start", "End", "Length")
		for i, e := range edges {
			fmt.Printf("%-6d %-12s %-35s %-35s %.6f\n", i+1,
				fmt.Sprintf("%d-%d", e.Edge.A, e.Edge.B),
				analysis.FormatVector(e.Start), analysis.FormatVector(e.End), e.Length)
		}
	}
}

// printMeshStatistics prints the topology and quality figures shared by info and resample
func printMeshStatistics(result *analysis.MeasurementResult) {
	fmt.Println("\nMesh Statistics:")
	fmt.Printf("  Vertices: %d (%d used)\n", result.VertexCount, result.UsedVertices)
	fmt.Printf("  Triangles: %d (%d degenerate)\n", result.TriangleCount, result.DegenerateTriangles)
	fmt.Printf("  Edges: %d (%d boundary, %d non-manifold)\n", result.EdgeCount, result.BoundaryEdges, result.NonManifoldEdges)
	fmt.Printf("  Surface Area: %.6f square units\n", result.SurfaceArea)
	fmt.Printf("  Dimensions: %.6f x %.6f x %.6f units\n", result.Dimensions.X, result.Dimensions.Y, result.Dimensions.Z)
	fmt.Printf("  Edge Lengths: min %.6f, max %.6f, avg %.6f\n", result.MinEdgeLength, result.MaxEdgeLength, result.AvgEdgeLength)
	fmt.Printf("  Minimum Angle: %.3f degrees\n", result.MinAngle)
}
