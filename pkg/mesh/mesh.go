// Package mesh holds the indexed triangle mesh shared by every stage:
// a vertex set addressed by position and a triangle set of index triples.
package mesh

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/philipparndt/meshsample/pkg/geometry"
)

// ErrIndexOutOfRange is returned by Validate for triangles referencing missing vertices
var ErrIndexOutOfRange = errors.New("triangle index out of range")

// Triangle is an index triple into a vertex set
type Triangle [3]int

// Mesh represents an indexed triangle mesh
type Mesh struct {
	Name      string
	Vertices  []geometry.Vector3
	Triangles []Triangle
}

// New creates an empty mesh
func New(name string) *Mesh {
	return &Mesh{
		Name:      name,
		Vertices:  make([]geometry.Vector3, 0),
		Triangles: make([]Triangle, 0),
	}
}

// FromPlanar builds a z=0 mesh from planar points and triangles
func FromPlanar(name string, points []orb.Point, triangles []Triangle) *Mesh {
	m := &Mesh{
		Name:      name,
		Vertices:  make([]geometry.Vector3, len(points)),
		Triangles: append([]Triangle(nil), triangles...),
	}
	for i, p := range points {
		m.Vertices[i] = geometry.FromXY(p)
	}
	return m
}

// VertexCount returns the number of vertices in the mesh
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles in the mesh
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// Facet returns the positions of triangle i
func (m *Mesh) Facet(i int) geometry.Triangle {
	t := m.Triangles[i]
	return geometry.NewTriangle(m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]])
}

// Validate checks that every triangle references an existing vertex
func (m *Mesh) Validate() error {
	n := len(m.Vertices)
	for i, t := range m.Triangles {
		for _, idx := range t {
			if idx < 0 || idx >= n {
				return fmt.Errorf("triangle %d references vertex %d of %d: %w", i, idx, n, ErrIndexOutOfRange)
			}
		}
	}
	return nil
}

// BoundingBox calculates the bounding box of all vertices
func (m *Mesh) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, v := range m.Vertices {
		bbox.Extend(v)
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the mesh
func (m *Mesh) SurfaceArea() float64 {
	total := 0.0
	for i := range m.Triangles {
		total += m.Facet(i).Area()
	}
	return total
}

// Planar projects every vertex onto the XY plane
func (m *Mesh) Planar() []orb.Point {
	points := make([]orb.Point, len(m.Vertices))
	for i, v := range m.Vertices {
		points[i] = v.XY()
	}
	return points
}

// Flatten returns a copy of the mesh with every z coordinate set to zero
func (m *Mesh) Flatten() *Mesh {
	return FromPlanar(m.Name, m.Planar(), m.Triangles)
}

// Subset returns the mesh made of the given triangles (in the given order) and only
// the vertices they use. Used vertices keep their relative order and are renumbered
// from zero; oldIndex maps each new vertex index back to m.
func (m *Mesh) Subset(triangles []int) (sub *Mesh, oldIndex []int) {
	newIndex := make([]int, len(m.Vertices))
	for i := range newIndex {
		newIndex[i] = -1
	}
	for _, ti := range triangles {
		for _, v := range m.Triangles[ti] {
			newIndex[v] = 0
		}
	}

	sub = New(m.Name)
	for old, mark := range newIndex {
		if mark < 0 {
			continue
		}
		newIndex[old] = len(oldIndex)
		oldIndex = append(oldIndex, old)
		sub.Vertices = append(sub.Vertices, m.Vertices[old])
	}
	for _, ti := range triangles {
		t := m.Triangles[ti]
		sub.Triangles = append(sub.Triangles, Triangle{newIndex[t[0]], newIndex[t[1]], newIndex[t[2]]})
	}
	return sub, oldIndex
}
