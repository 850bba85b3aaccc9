package remesh

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Polygon is the closed silhouette used for membership tests
type Polygon struct {
	ring orb.Ring
}

// NewPolygon builds a polygon from an open or closed point loop
func NewPolygon(loop []orb.Point) Polygon {
	ring := make(orb.Ring, len(loop), len(loop)+1)
	copy(ring, loop)
	if len(ring) > 0 && !ring.Closed() {
		ring = append(ring, ring[0])
	}
	return Polygon{ring: ring}
}

// boundaryTolerance is relative to the larger side of the polygon bounds
const boundaryTolerance = 1e-9

// Contains reports whether pt lies strictly inside the polygon. Points on
// or within a tiny tolerance of the outline are outside. Polygons with fewer
// than three corners contain nothing.
func (p Polygon) Contains(pt orb.Point) bool {
	if len(p.ring) < 4 {
		return false
	}
	if p.onBoundary(pt) {
		return false
	}
	return planar.RingContains(p.ring, pt)
}

func (p Polygon) onBoundary(pt orb.Point) bool {
	b := p.ring.Bound()
	eps := boundaryTolerance * math.Max(1, math.Max(b.Max[0]-b.Min[0], b.Max[1]-b.Min[1]))
	for i := 0; i+1 < len(p.ring); i++ {
		if planar.DistanceFromSegment(p.ring[i], p.ring[i+1], pt) <= eps {
			return true
		}
	}
	return false
}

// Ring returns the closed ring
func (p Polygon) Ring() orb.Ring {
	return p.ring
}

// Bound returns the axis-aligned bounds of the polygon
func (p Polygon) Bound() orb.Bound {
	return p.ring.Bound()
}

// Perimeter returns the length of the closed outline
func (p Polygon) Perimeter() float64 {
	return planar.Length(p.ring)
}

// Area returns the enclosed area
func (p Polygon) Area() float64 {
	return planar.Area(orb.Polygon{p.ring})
}
