package remesh

import "github.com/philipparndt/meshsample/pkg/mesh"

// Edge is an undirected edge normalized so that A <= B
type Edge struct {
	A, B int
}

// NewEdge returns the normalized edge between a and b
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// EdgeCounts is the edge-incidence map of a triangle set: how many
// triangles use each undirected edge. Edges keep their first-seen order.
type EdgeCounts struct {
	counts map[Edge]int
	order  []Edge
}

// CountEdges builds the edge-incidence map over all three edges of every triangle
func CountEdges(triangles []mesh.Triangle) *EdgeCounts {
	ec := &EdgeCounts{counts: make(map[Edge]int, len(triangles)*3/2)}
	for _, t := range triangles {
		for i := 0; i < 3; i++ {
			e := NewEdge(t[i], t[(i+1)%3])
			if ec.counts[e] == 0 {
				ec.order = append(ec.order, e)
			}
			ec.counts[e]++
		}
	}
	return ec
}

// Len returns the number of distinct edges
func (ec *EdgeCounts) Len() int {
	return len(ec.order)
}

// Count returns how many triangles use e
func (ec *EdgeCounts) Count(e Edge) int {
	return ec.counts[e]
}

// Edges returns every distinct edge in first-seen order
func (ec *EdgeCounts) Edges() []Edge {
	return append([]Edge(nil), ec.order...)
}

// BoundaryEdges returns the edges used by exactly one triangle, in first-seen order
func (ec *EdgeCounts) BoundaryEdges() []Edge {
	return ec.filter(func(c int) bool { return c == 1 })
}

// NonManifold returns the edges shared by three or more triangles
func (ec *EdgeCounts) NonManifold() []Edge {
	return ec.filter(func(c int) bool { return c >= 3 })
}

func (ec *EdgeCounts) filter(keep func(int) bool) []Edge {
	var edges []Edge
	for _, e := range ec.order {
		if keep(ec.counts[e]) {
			edges = append(edges, e)
		}
	}
	return edges
}
