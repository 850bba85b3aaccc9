// Package analysis computes descriptive statistics of indexed meshes for
// the info command and the summary printed after a resampling run.
package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/meshsample/pkg/geometry"
	"github.com/philipparndt/meshsample/pkg/mesh"
	"github.com/philipparndt/meshsample/pkg/remesh"
)

// EdgeInfo contains information about a distinct edge of the mesh
type EdgeInfo struct {
	Edge      remesh.Edge
	Start     geometry.Vector3
	End       geometry.Vector3
	Length    float64
	Triangles int
}

// MeasurementResult contains various measurements of a mesh
type MeasurementResult struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	SurfaceArea   float64
	VertexCount   int
	UsedVertices  int
	TriangleCount int

	EdgeCount        int
	BoundaryEdges    int
	NonManifoldEdges int
	MinEdgeLength    float64
	MaxEdgeLength    float64
	AvgEdgeLength    float64

	// MinAngle is the smallest interior angle in degrees over non-degenerate triangles
	MinAngle            float64
	DegenerateTriangles int

	AllEdges []EdgeInfo
}

// AnalyzeMesh performs the analysis on an indexed mesh
func AnalyzeMesh(m *mesh.Mesh) *MeasurementResult {
	result := &MeasurementResult{
		BoundingBox:   m.BoundingBox(),
		SurfaceArea:   m.SurfaceArea(),
		VertexCount:   m.VertexCount(),
		TriangleCount: m.TriangleCount(),
		AllEdges:      make([]EdgeInfo, 0),
	}
	if !result.BoundingBox.IsEmpty() {
		result.Dimensions = result.BoundingBox.Size()
	}

	used := make(map[int]bool)
	minAngle := math.Inf(1)
	for i, t := range m.Triangles {
		for _, v := range t {
			used[v] = true
		}
		facet := m.Facet(i)
		if facet.Area() < 1e-12 {
			result.DegenerateTriangles++
			continue
		}
		for _, a := range facet.Angles() {
			minAngle = math.Min(minAngle, a)
		}
	}
	result.UsedVertices = len(used)
	if !math.IsInf(minAngle, 1) {
		result.MinAngle = minAngle * 180 / math.Pi
	}

	ec := remesh.CountEdges(m.Triangles)
	result.BoundaryEdges = len(ec.BoundaryEdges())
	result.NonManifoldEdges = len(ec.NonManifold())

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0
	for _, e := range ec.Edges() {
		start, end := m.Vertices[e.A], m.Vertices[e.B]
		length := start.Distance(end)
		result.AllEdges = append(result.AllEdges, EdgeInfo{
			Edge:      e,
			Start:     start,
			End:       end,
			Length:    length,
			Triangles: ec.Count(e),
		})

		totalLength += length
		minLength = math.Min(minLength, length)
		maxLength = math.Max(maxLength, length)
	}

	result.EdgeCount = len(result.AllEdges)
	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}
	return result
}

// FindLongestEdges returns the N longest edges in the mesh
func FindLongestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b EdgeInfo) bool { return a.Length > b.Length })
}

// FindShortestEdges returns the N shortest edges in the mesh
func FindShortestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b EdgeInfo) bool { return a.Length < b.Length })
}

func sortedEdges(result *MeasurementResult, count int, less func(a, b EdgeInfo) bool) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.SliceStable(edges, func(i, j int) bool {
		return less(edges[i], edges[j])
	})

	if count > len(edges) {
		count = len(edges)
	}
	return edges[:count]
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
