package mesh

import (
	"errors"
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/philipparndt/meshsample/pkg/geometry"
)

func unitSquare() *Mesh {
	m := New("square")
	m.Vertices = []geometry.Vector3{
		geometry.NewVector3(0, 0, 1),
		geometry.NewVector3(1, 0, 1),
		geometry.NewVector3(1, 1, 1),
		geometry.NewVector3(0, 1, 1),
	}
	m.Triangles = []Triangle{{0, 1, 2}, {0, 2, 3}}
	return m
}

func TestSurfaceArea(t *testing.T) {
	area := unitSquare().SurfaceArea()
	if math.Abs(area-1.0) > 1e-10 {
		t.Errorf("SurfaceArea failed: expected 1, got %v", area)
	}
}

func TestValidate(t *testing.T) {
	m := unitSquare()
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate failed on valid mesh: %v", err)
	}

	m.Triangles = append(m.Triangles, Triangle{0, 3, 4})
	err := m.Validate()
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestFlatten(t *testing.T) {
	flat := unitSquare().Flatten()
	for i, v := range flat.Vertices {
		if v.Z != 0 {
			t.Errorf("Vertex %d not flattened: %v", i, v)
		}
	}
	if len(flat.Triangles) != 2 {
		t.Errorf("Flatten lost triangles: %d", len(flat.Triangles))
	}
}

func TestSubset(t *testing.T) {
	m := New("strip")
	for i := 0; i < 6; i++ {
		m.Vertices = append(m.Vertices, geometry.NewVector3(float64(i), float64(i%2), 0))
	}
	m.Triangles = []Triangle{{0, 1, 2}, {1, 2, 3}, {2, 3, 4}, {3, 4, 5}}

	sub, oldIndex := m.Subset([]int{3, 1})

	expectedOld := []int{1, 2, 3, 4, 5}
	if len(oldIndex) != len(expectedOld) {
		t.Fatalf("Subset oldIndex failed: expected %v, got %v", expectedOld, oldIndex)
	}
	for i := range expectedOld {
		if oldIndex[i] != expectedOld[i] {
			t.Errorf("oldIndex[%d]: expected %d, got %d", i, expectedOld[i], oldIndex[i])
		}
	}

	// Triangle order follows the request order.
	expectedTris := []Triangle{{2, 3, 4}, {0, 1, 2}}
	for i, tri := range sub.Triangles {
		if tri != expectedTris[i] {
			t.Errorf("Triangle %d: expected %v, got %v", i, expectedTris[i], tri)
		}
	}
	for newIdx, old := range oldIndex {
		if sub.Vertices[newIdx] != m.Vertices[old] {
			t.Errorf("Vertex %d does not match original %d", newIdx, old)
		}
	}
}

func TestFromPlanar(t *testing.T) {
	m := FromPlanar("p", []orb.Point{{1, 2}, {3, 4}, {5, 7}}, []Triangle{{0, 1, 2}})
	if m.Vertices[2] != geometry.NewVector3(5, 7, 0) {
		t.Errorf("FromPlanar vertex failed: %v", m.Vertices[2])
	}
	if m.TriangleCount() != 1 || m.VertexCount() != 3 {
		t.Errorf("FromPlanar counts failed: %d vertices, %d triangles", m.VertexCount(), m.TriangleCount())
	}
}

func TestWelder(t *testing.T) {
	w := NewWelder("welded")
	a := geometry.NewVector3(0, 0, 0)
	b := geometry.NewVector3(1, 0, 0)
	c := geometry.NewVector3(1, 1, 0)
	d := geometry.NewVector3(0, 1, 0)
	w.AddFacet(a, b, c)
	w.AddFacet(a, c, d)

	m := w.Mesh()
	if m.VertexCount() != 4 {
		t.Errorf("Expected 4 welded vertices, got %d", m.VertexCount())
	}
	if m.Triangles[1] != (Triangle{0, 2, 3}) {
		t.Errorf("Second triangle should share vertices, got %v", m.Triangles[1])
	}
}
