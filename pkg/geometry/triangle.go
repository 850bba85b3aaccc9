package geometry

import "math"

// Triangle is a facet given by its three corner positions
type Triangle struct {
	V1, V2, V3 Vector3
}

// NewTriangle creates a new triangle
func NewTriangle(v1, v2, v3 Vector3) Triangle {
	return Triangle{V1: v1, V2: v2, V3: v3}
}

// Cross returns the unnormalized face normal (V2-V1) x (V3-V1).
// Its length is twice the triangle area.
func (t Triangle) Cross() Vector3 {
	return t.V2.Sub(t.V1).Cross(t.V3.Sub(t.V1))
}

// Normal returns the unit face normal, or the zero vector for a degenerate triangle
func (t Triangle) Normal() Vector3 {
	return t.Cross().Normalize()
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	return t.Cross().Length() / 2.0
}

// EdgeLengths returns the lengths of all three edges
func (t Triangle) EdgeLengths() [3]float64 {
	return [3]float64{
		t.V1.Distance(t.V2),
		t.V2.Distance(t.V3),
		t.V3.Distance(t.V1),
	}
}

// Perimeter returns the total length of all edges
func (t Triangle) Perimeter() float64 {
	lengths := t.EdgeLengths()
	return lengths[0] + lengths[1] + lengths[2]
}

// Center returns the centroid of the triangle
func (t Triangle) Center() Vector3 {
	return Vector3{
		X: (t.V1.X + t.V2.X + t.V3.X) / 3.0,
		Y: (t.V1.Y + t.V2.Y + t.V3.Y) / 3.0,
		Z: (t.V1.Z + t.V2.Z + t.V3.Z) / 3.0,
	}
}

// Angles returns the three interior angles in radians (at V1, V2, V3)
func (t Triangle) Angles() [3]float64 {
	angle := func(at, a, b Vector3) float64 {
		u := a.Sub(at).Normalize()
		w := b.Sub(at).Normalize()
		// Clamp to keep Acos defined under rounding.
		return math.Acos(math.Max(-1, math.Min(1, u.Dot(w))))
	}
	return [3]float64{
		angle(t.V1, t.V2, t.V3),
		angle(t.V2, t.V3, t.V1),
		angle(t.V3, t.V1, t.V2),
	}
}
