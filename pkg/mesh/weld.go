package mesh

import "github.com/philipparndt/meshsample/pkg/geometry"

// Welder builds an indexed mesh from loose facets, merging corners with
// bit-identical coordinates into a single vertex. Facet soups such as STL
// carry no connectivity otherwise.
type Welder struct {
	mesh  *Mesh
	index map[geometry.Vector3]int
}

// NewWelder creates a welder producing a mesh with the given name
func NewWelder(name string) *Welder {
	return &Welder{
		mesh:  New(name),
		index: make(map[geometry.Vector3]int),
	}
}

// Vertex returns the index of v, adding it on first sight
func (w *Welder) Vertex(v geometry.Vector3) int {
	if idx, ok := w.index[v]; ok {
		return idx
	}
	idx := len(w.mesh.Vertices)
	w.mesh.Vertices = append(w.mesh.Vertices, v)
	w.index[v] = idx
	return idx
}

// AddFacet appends a triangle given by its corner positions
func (w *Welder) AddFacet(v1, v2, v3 geometry.Vector3) {
	w.mesh.Triangles = append(w.mesh.Triangles, Triangle{w.Vertex(v1), w.Vertex(v2), w.Vertex(v3)})
}

// SetName changes the name of the mesh being built
func (w *Welder) SetName(name string) {
	w.mesh.Name = name
}

// Mesh returns the mesh built so far
func (w *Welder) Mesh() *Mesh {
	return w.mesh
}
