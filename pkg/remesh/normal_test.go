package remesh

import (
	"testing"

	"github.com/philipparndt/meshsample/pkg/geometry"
	"github.com/philipparndt/meshsample/pkg/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cube returns a unit cube; only the top (z=1) and bottom faces have a defined winding
func cube() *mesh.Mesh {
	m := mesh.New("cube")
	for _, z := range []float64{0, 1} {
		m.Vertices = append(m.Vertices,
			geometry.NewVector3(0, 0, z),
			geometry.NewVector3(1, 0, z),
			geometry.NewVector3(1, 1, z),
			geometry.NewVector3(0, 1, z),
		)
	}
	m.Triangles = []mesh.Triangle{
		{0, 2, 1}, {0, 3, 2}, // bottom, facing -z
		{0, 1, 5}, {0, 5, 4},
		{1, 2, 6}, {1, 6, 5},
		{4, 5, 6}, {4, 6, 7}, // top, facing +z
		{2, 3, 7}, {2, 7, 6},
		{3, 0, 4}, {3, 4, 7},
	}
	return m
}

func TestFilterTopFace(t *testing.T) {
	top, err := FilterTopFace(cube(), UpAxis, DefaultCosThreshold)
	require.NoError(t, err)

	assert.Equal(t, []int{6, 7}, top.Kept)
	assert.Equal(t, []int{4, 5, 6, 7}, top.OldIndex)
	assert.Equal(t, []int{-1, -1, -1, -1, 0, 1, 2, 3}, top.NewIndex)
	assert.Equal(t, []mesh.Triangle{{0, 1, 2}, {0, 2, 3}}, top.Mesh.Triangles)
	assert.Equal(t, 0, top.Degenerate)
	assert.Len(t, top.Mesh.Vertices, 4)
	assert.Equal(t, 1.0, top.Mesh.Vertices[0].Z)
}

func TestFilterTopFaceOtherAxis(t *testing.T) {
	top, err := FilterTopFace(cube(), geometry.NewVector3(0, 0, -3), DefaultCosThreshold)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, top.Kept)
}

func TestFilterTopFaceDegenerate(t *testing.T) {
	m := cube()
	m.Vertices = append(m.Vertices, geometry.NewVector3(2, 2, 1))
	m.Triangles = append(m.Triangles, mesh.Triangle{8, 8, 6})

	top, err := FilterTopFace(m, UpAxis, DefaultCosThreshold)
	require.NoError(t, err)
	assert.Equal(t, 1, top.Degenerate)
	assert.Equal(t, []int{6, 7}, top.Kept)
	assert.Equal(t, -1, top.NewIndex[8])
}

func TestFilterTopFaceEmpty(t *testing.T) {
	m := cube()
	m.Triangles = m.Triangles[2:6]

	_, err := FilterTopFace(m, UpAxis, DefaultCosThreshold)
	assert.ErrorIs(t, err, ErrEmptyTopFace)
}

func TestFilterTopFaceZeroAxis(t *testing.T) {
	_, err := FilterTopFace(cube(), geometry.Vector3{}, DefaultCosThreshold)
	assert.Error(t, err)
}
