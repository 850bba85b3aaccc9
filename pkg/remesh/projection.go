package remesh

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/philipparndt/meshsample/pkg/geometry"
)

// Projection maps 3D vertices onto the plane orthogonal to a reference axis.
// U, V and the axis form a right-handed orthonormal frame; for +Z the frame
// is the identity, so the plane coordinates are the vertex X and Y.
type Projection struct {
	U, V geometry.Vector3
	Axis geometry.Vector3
}

// NewProjection builds the frame for axis. A zero axis falls back to UpAxis.
func NewProjection(axis geometry.Vector3) Projection {
	if axis.Length() == 0 {
		axis = UpAxis
	}
	axis = axis.Normalize()

	helper := geometry.NewVector3(0, 1, 0)
	if math.Abs(axis.Y) > 0.9 {
		helper = geometry.NewVector3(0, 0, 1)
	}
	u := helper.Cross(axis).Normalize()
	return Projection{U: u, V: axis.Cross(u), Axis: axis}
}

// Point returns the plane coordinates of v
func (p Projection) Point(v geometry.Vector3) orb.Point {
	return orb.Point{v.Dot(p.U), v.Dot(p.V)}
}

// Points projects every vertex
func (p Projection) Points(vertices []geometry.Vector3) []orb.Point {
	points := make([]orb.Point, len(vertices))
	for i, v := range vertices {
		points[i] = p.Point(v)
	}
	return points
}
