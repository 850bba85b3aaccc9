package geometry

import (
	"math"

	"github.com/paulmach/orb"
)

// Vector3 is a mesh vertex, or a direction such as a face normal
type Vector3 struct {
	X, Y, Z float64
}

func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// FromXY places a planar point at z = 0
func FromXY(p orb.Point) Vector3 {
	return Vector3{X: p[0], Y: p[1]}
}

// XY is the footprint of v on the z = 0 plane
func (v Vector3) XY() orb.Point {
	return orb.Point{v.X, v.Y}
}

// Sub returns the edge vector from o to v
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vector3) Dot(o Vector3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross follows the right-hand rule: x cross y is z
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vector3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vector3) Distance(o Vector3) float64 {
	return v.Sub(o).Length()
}

// Normalize scales v to unit length. The zero vector has no direction and
// comes back as zero.
func (v Vector3) Normalize() Vector3 {
	n := v.Length()
	if n == 0 {
		return Vector3{}
	}
	return Vector3{v.X / n, v.Y / n, v.Z / n}
}

// Min is the component-wise minimum, used to grow bounding boxes
func (v Vector3) Min(o Vector3) Vector3 {
	return Vector3{math.Min(v.X, o.X), math.Min(v.Y, o.Y), math.Min(v.Z, o.Z)}
}

// Max is the component-wise maximum
func (v Vector3) Max(o Vector3) Vector3 {
	return Vector3{math.Max(v.X, o.X), math.Max(v.Y, o.Y), math.Max(v.Z, o.Z)}
}
