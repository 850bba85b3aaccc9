package remesh

import (
	"fmt"

	"github.com/philipparndt/meshsample/pkg/geometry"
	"github.com/philipparndt/meshsample/pkg/mesh"
)

const (
	// DefaultCosThreshold keeps faces within roughly 25.8 degrees of the reference axis
	DefaultCosThreshold = 0.9

	degenerateNormal = 1e-8
)

// UpAxis is the default reference direction for top-face isolation
var UpAxis = geometry.NewVector3(0, 0, 1)

// TopFace is the subset of a mesh whose faces point along a reference axis
type TopFace struct {
	// Mesh holds the kept triangles over the vertices they use, renumbered from zero
	Mesh *mesh.Mesh
	// Kept lists the kept triangle indices of the input, in input order
	Kept []int
	// OldIndex maps a vertex of Mesh to its index in the input
	OldIndex []int
	// NewIndex maps an input vertex to its index in Mesh, or -1 when unused
	NewIndex []int
	// Degenerate counts triangles skipped for having no usable normal
	Degenerate int
}

// FilterTopFace keeps the triangles whose unit normal (v1-v0)x(v2-v0) has a
// component along axis greater than cosThreshold. Near-zero-area triangles
// are neither kept nor rejected as facing away; they are counted in Degenerate.
func FilterTopFace(m *mesh.Mesh, axis geometry.Vector3, cosThreshold float64) (*TopFace, error) {
	if axis.Length() == 0 {
		return nil, fmt.Errorf("reference axis must be non-zero")
	}
	axis = axis.Normalize()

	top := &TopFace{}
	for i := range m.Triangles {
		n := m.Facet(i).Cross()
		length := n.Length()
		if length < degenerateNormal {
			top.Degenerate++
			continue
		}
		if n.Dot(axis)/length > cosThreshold {
			top.Kept = append(top.Kept, i)
		}
	}
	if len(top.Kept) == 0 {
		return nil, fmt.Errorf("%w: threshold %.3f rejected all %d triangles",
			ErrEmptyTopFace, cosThreshold, len(m.Triangles))
	}

	top.Mesh, top.OldIndex = m.Subset(top.Kept)
	top.NewIndex = make([]int, len(m.Vertices))
	for i := range top.NewIndex {
		top.NewIndex[i] = -1
	}
	for newIdx, old := range top.OldIndex {
		top.NewIndex[old] = newIdx
	}
	return top, nil
}
