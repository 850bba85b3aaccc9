package remesh

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelaunaySquareWithCenter(t *testing.T) {
	points := append(unitSquare(), orb.Point{0.5, 0.5})

	triangles, err := Delaunay(points)
	require.NoError(t, err)
	require.Len(t, triangles, 4)

	area := 0.0
	for _, tri := range triangles {
		a := signedArea(points, tri)
		assert.Greater(t, a, 0.0, "triangle %v is not counter-clockwise", tri)
		area += a
	}
	assert.InDelta(t, 1.0, area, 1e-12)
}

func TestDelaunayTooFewPoints(t *testing.T) {
	_, err := Delaunay([]orb.Point{{0, 0}, {1, 0}})
	assert.ErrorIs(t, err, ErrTriangulation)
}

func TestRetriangulateTrimsConcaveNotch(t *testing.T) {
	outline := lShape()
	poly := NewPolygon(outline)
	points := ResampleBoundary(outline, 0.25)
	points = append(points, orb.Point{0.5, 0.5}, orb.Point{1.5, 0.5}, orb.Point{0.5, 1.5})

	triangles, err := Retriangulate(points, poly)
	require.NoError(t, err)
	require.NotEmpty(t, triangles)

	area := 0.0
	for _, tri := range triangles {
		c := Centroid(points, tri)
		assert.True(t, poly.Contains(c), "centroid %v outside", c)
		assert.False(t, c[0] > 1 && c[1] > 1, "centroid %v in the notch", c)
		for _, v := range tri {
			assert.Less(t, v, len(points))
		}
		area += signedArea(points, tri)
	}
	// the boundary points lie on the outline, so the trimmed triangulation covers the L exactly
	assert.InDelta(t, poly.Area(), area, 1e-9)
}

func TestCentroid(t *testing.T) {
	points := []orb.Point{{0, 0}, {3, 0}, {0, 3}}
	assert.Equal(t, orb.Point{1, 1}, Centroid(points, [3]int{0, 1, 2}))
}
