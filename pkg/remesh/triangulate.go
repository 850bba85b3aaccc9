package remesh

import (
	"fmt"

	"github.com/fogleman/delaunay"
	"github.com/paulmach/orb"
	"github.com/philipparndt/meshsample/pkg/mesh"
)

// Delaunay triangulates a planar point set over its convex hull. Triangles
// are counter-clockwise index triples into points.
func Delaunay(points []orb.Point) ([]mesh.Triangle, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("%w: need at least 3 points, got %d", ErrTriangulation, len(points))
	}

	input := make([]delaunay.Point, len(points))
	for i, p := range points {
		input[i] = delaunay.Point{X: p[0], Y: p[1]}
	}
	tri, err := delaunay.Triangulate(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTriangulation, err)
	}

	triangles := make([]mesh.Triangle, 0, len(tri.Triangles)/3)
	for i := 0; i+2 < len(tri.Triangles); i += 3 {
		t := mesh.Triangle{tri.Triangles[i], tri.Triangles[i+1], tri.Triangles[i+2]}
		if signedArea(points, t) < 0 {
			t[1], t[2] = t[2], t[1]
		}
		triangles = append(triangles, t)
	}
	return triangles, nil
}

// Retriangulate computes the Delaunay triangulation of points and keeps the
// triangles whose centroid lies inside poly. Concave parts of the outline are
// trimmed only approximately: slivers may cross the outline and triangles at
// sharp concavities may be dropped.
func Retriangulate(points []orb.Point, poly Polygon) ([]mesh.Triangle, error) {
	all, err := Delaunay(points)
	if err != nil {
		return nil, err
	}

	kept := all[:0]
	for _, t := range all {
		if poly.Contains(Centroid(points, t)) {
			kept = append(kept, t)
		}
	}
	return kept, nil
}

// Centroid returns the mean of the triangle's corners
func Centroid(points []orb.Point, t mesh.Triangle) orb.Point {
	a, b, c := points[t[0]], points[t[1]], points[t[2]]
	return orb.Point{(a[0] + b[0] + c[0]) / 3, (a[1] + b[1] + c[1]) / 3}
}

func signedArea(points []orb.Point, t mesh.Triangle) float64 {
	a, b, c := points[t[0]], points[t[1]], points[t[2]]
	return ((b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])) / 2
}
