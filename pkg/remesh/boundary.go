package remesh

import (
	"fmt"
	"sort"

	"github.com/paulmach/orb"
	"github.com/philipparndt/meshsample/pkg/mesh"
)

// TraceKind tells how a boundary loop was obtained
type TraceKind int

const (
	// LoopFound means the boundary edges formed one closed loop
	LoopFound TraceKind = iota
	// HullFallback means the loop is the convex hull of the referenced vertices
	HullFallback
)

func (k TraceKind) String() string {
	switch k {
	case LoopFound:
		return "loop"
	case HullFallback:
		return "hull-fallback"
	default:
		return fmt.Sprintf("TraceKind(%d)", int(k))
	}
}

// Trace is the outcome of boundary tracing. Reason is set for HullFallback
// and wraps ErrDegenerateBoundary.
type Trace struct {
	Kind   TraceKind
	Loop   []int
	Reason error
}

// TraceBoundary returns the ordered boundary loop of a triangle set. When
// the boundary edges do not form a single closed loop it falls back to the
// convex hull of the vertices the triangles reference. The hull is lossy
// for concave or multiply connected shapes.
func TraceBoundary(points []orb.Point, triangles []mesh.Triangle) Trace {
	loop, err := WalkBoundary(triangles)
	if err == nil {
		return Trace{Kind: LoopFound, Loop: loop}
	}
	return Trace{
		Kind:   HullFallback,
		Loop:   ConvexHull(points, referencedVertices(triangles)),
		Reason: err,
	}
}

// WalkBoundary walks the boundary edges (used by exactly one triangle) into
// one ordered vertex loop. Every boundary vertex must have exactly two
// boundary neighbours and the walk must visit all of them; anything else is
// reported as ErrDegenerateBoundary.
func WalkBoundary(triangles []mesh.Triangle) ([]int, error) {
	boundary := CountEdges(triangles).BoundaryEdges()
	if len(boundary) == 0 {
		return nil, fmt.Errorf("%w: no boundary edges", ErrDegenerateBoundary)
	}

	adjacency := make(map[int][]int)
	var vertices []int
	link := func(from, to int) {
		if _, ok := adjacency[from]; !ok {
			vertices = append(vertices, from)
		}
		adjacency[from] = append(adjacency[from], to)
	}
	for _, e := range boundary {
		if e.A == e.B {
			return nil, fmt.Errorf("%w: collapsed edge at vertex %d", ErrDegenerateBoundary, e.A)
		}
		link(e.A, e.B)
		link(e.B, e.A)
	}
	for _, v := range vertices {
		if n := len(adjacency[v]); n != 2 {
			return nil, fmt.Errorf("%w: vertex %d has %d boundary neighbours", ErrDegenerateBoundary, v, n)
		}
	}

	start := boundary[0].A
	loop := []int{start}
	visited := map[int]bool{start: true}
	prev, curr := -1, start
	for {
		neighbours := adjacency[curr]
		next := neighbours[0]
		if next == prev {
			next = neighbours[1]
		}
		if next == start {
			break
		}
		if visited[next] {
			return nil, fmt.Errorf("%w: walk revisits vertex %d", ErrDegenerateBoundary, next)
		}
		visited[next] = true
		loop = append(loop, next)
		prev, curr = curr, next
	}

	if len(loop) != len(vertices) {
		return nil, fmt.Errorf("%w: loop covers %d of %d boundary vertices (multiple loops)",
			ErrDegenerateBoundary, len(loop), len(vertices))
	}
	return loop, nil
}

// ConvexHull returns the indices (into points) of the planar convex hull of
// the given vertices, counter-clockwise, without collinear or duplicate
// points. Fewer than three distinct points are returned as they are.
func ConvexHull(points []orb.Point, indices []int) []int {
	idx := append([]int(nil), indices...)
	sort.SliceStable(idx, func(i, j int) bool {
		a, b := points[idx[i]], points[idx[j]]
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		return a[1] < b[1]
	})

	unique := idx[:0]
	for _, i := range idx {
		if len(unique) > 0 && points[unique[len(unique)-1]] == points[i] {
			continue
		}
		unique = append(unique, i)
	}
	if len(unique) < 3 {
		return append([]int(nil), unique...)
	}

	cross := func(o, a, b orb.Point) float64 {
		return (a[0]-o[0])*(b[1]-o[1]) - (a[1]-o[1])*(b[0]-o[0])
	}

	// Andrew's monotone chain
	hull := make([]int, 0, 2*len(unique))
	for _, i := range unique {
		for len(hull) >= 2 && cross(points[hull[len(hull)-2]], points[hull[len(hull)-1]], points[i]) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, i)
	}
	lower := len(hull) + 1
	for k := len(unique) - 2; k >= 0; k-- {
		i := unique[k]
		for len(hull) >= lower && cross(points[hull[len(hull)-2]], points[hull[len(hull)-1]], points[i]) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, i)
	}
	return hull[:len(hull)-1]
}

func referencedVertices(triangles []mesh.Triangle) []int {
	seen := make(map[int]bool)
	var vertices []int
	for _, t := range triangles {
		for _, v := range t {
			if !seen[v] {
				seen[v] = true
				vertices = append(vertices, v)
			}
		}
	}
	sort.Ints(vertices)
	return vertices
}
