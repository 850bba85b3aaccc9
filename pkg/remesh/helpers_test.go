package remesh

import (
	"github.com/paulmach/orb"
	"github.com/philipparndt/meshsample/pkg/geometry"
	"github.com/philipparndt/meshsample/pkg/mesh"
)

// gridMesh triangulates [0,1]x[0,1] with nx by ny cells, two triangles each
func gridMesh(nx, ny int) *mesh.Mesh {
	m := mesh.New("grid")
	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			m.Vertices = append(m.Vertices, geometry.NewVector3(float64(i)/float64(nx), float64(j)/float64(ny), 0))
		}
	}
	idx := func(i, j int) int { return j*(nx+1) + i }
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			a, b, c, d := idx(i, j), idx(i+1, j), idx(i+1, j+1), idx(i, j+1)
			m.Triangles = append(m.Triangles, mesh.Triangle{a, b, c}, mesh.Triangle{a, c, d})
		}
	}
	return m
}

// tetrahedron is a closed surface: no edge is used by exactly one triangle
func tetrahedron() *mesh.Mesh {
	m := mesh.New("tetrahedron")
	m.Vertices = []geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
		geometry.NewVector3(0.2, 0.2, 1),
	}
	m.Triangles = []mesh.Triangle{{0, 2, 1}, {0, 1, 3}, {1, 2, 3}, {2, 0, 3}}
	return m
}

// lShape is the outline of [0,2]x[0,2] minus the square [1,2]x[1,2]
func lShape() []orb.Point {
	return []orb.Point{{0, 0}, {2, 0}, {2, 1}, {1, 1}, {1, 2}, {0, 2}}
}

func unitSquare() []orb.Point {
	return []orb.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
}
