package meshio

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/philipparndt/meshsample/pkg/geometry"
	"github.com/philipparndt/meshsample/pkg/mesh"
	"github.com/philipparndt/meshsample/pkg/stl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square() *mesh.Mesh {
	return mesh.FromPlanar("square",
		[]orb.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0.5, 0.123456789}},
		[]mesh.Triangle{{0, 1, 4}, {1, 2, 4}, {2, 3, 4}, {3, 0, 4}},
	)
}

func TestWriteVertFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVert(&buf, square()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "0.000000 0.000000 0.000000", lines[0])
	assert.Equal(t, "0.500000 0.123457 0.000000", lines[4])
}

func TestWriteTrivFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTriv(&buf, square()))
	assert.Equal(t, "1 2 5\n2 3 5\n3 4 5\n4 1 5\n", buf.String())
}

func TestVertTrivRoundTrip(t *testing.T) {
	m := square()
	var vert, triv bytes.Buffer
	require.NoError(t, WriteVert(&vert, m))
	require.NoError(t, WriteTriv(&triv, m))

	vertices, err := ReadVert(&vert)
	require.NoError(t, err)
	triangles, err := ReadTriv(&triv)
	require.NoError(t, err)

	require.Len(t, vertices, len(m.Vertices))
	for i, v := range vertices {
		assert.InDelta(t, m.Vertices[i].X, v.X, 5e-7)
		assert.InDelta(t, m.Vertices[i].Y, v.Y, 5e-7)
		assert.InDelta(t, m.Vertices[i].Z, v.Z, 5e-7)
	}
	assert.Equal(t, m.Triangles, triangles)
}

func TestReadTrivErrors(t *testing.T) {
	_, err := ReadTriv(strings.NewReader("1 2\n"))
	assert.Error(t, err)
	_, err = ReadTriv(strings.NewReader("0 1 2\n"))
	assert.Error(t, err)
	_, err = ReadVert(strings.NewReader("1 2 x\n"))
	assert.Error(t, err)
}

func TestWriteOBJFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOBJ(&buf, square()))

	expected := "v 0.000000 0.000000 0.000000\n" +
		"v 1.000000 0.000000 0.000000\n" +
		"v 1.000000 1.000000 0.000000\n" +
		"v 0.000000 1.000000 0.000000\n" +
		"v 0.500000 0.123457 0.000000\n" +
		"f 1 2 5\n" +
		"f 2 3 5\n" +
		"f 3 4 5\n" +
		"f 4 1 5\n"
	assert.Equal(t, expected, buf.String())
}

func TestOBJRoundTrip(t *testing.T) {
	m := square()
	var buf bytes.Buffer
	require.NoError(t, WriteOBJ(&buf, m))

	got, err := ReadOBJ(&buf)
	require.NoError(t, err)
	assert.Empty(t, got.Name)
	assert.Equal(t, m.Triangles, got.Triangles)
	require.Len(t, got.Vertices, len(m.Vertices))
	assert.InDelta(t, 0.123457, got.Vertices[4].Y, 1e-12)
}

func TestReadOBJPolygonsAndReferences(t *testing.T) {
	src := `# quad with texture and normal references
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vn 0 0 1
f 1/1/1 2/1/1 3//1 4
f -4 -3 -2
`
	m, err := ReadOBJ(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []mesh.Triangle{{0, 1, 2}, {0, 2, 3}, {0, 1, 2}}, m.Triangles)

	_, err = ReadOBJ(strings.NewReader("v 0 0 0\nf 1 2 3\nf -9 1 1\n"))
	assert.Error(t, err)
}

func TestWriteSTLReadBack(t *testing.T) {
	m := square()
	var buf bytes.Buffer
	require.NoError(t, WriteSTL(&buf, m))

	got, err := stl.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, 4, got.TriangleCount())
	assert.Equal(t, 5, got.VertexCount())
}

func TestWriteGeoJSON(t *testing.T) {
	m := square()
	boundary := []orb.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	var buf bytes.Buffer
	require.NoError(t, WriteGeoJSON(&buf, m, boundary))

	fc, err := geojson.UnmarshalFeatureCollection(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, fc.Features, 5)

	line, ok := fc.Features[0].Geometry.(orb.LineString)
	require.True(t, ok)
	assert.Len(t, line, 5)
	assert.Equal(t, line[0], line[4])
	assert.Equal(t, "boundary", fc.Features[0].Properties["kind"])

	_, ok = fc.Features[1].Geometry.(orb.Polygon)
	assert.True(t, ok)
}

func TestManifestRoundTrip(t *testing.T) {
	manifest := NewManifest("part.stl", "dev")
	manifest.Params = map[string]any{"target": 500, "spacing": 0.05}
	manifest.Boundary = ManifestBoundary{Kind: "loop", Loop: 12, Chain: 80}
	manifest.Counts = ManifestCounts{Requested: 500, Vertices: 498, Shortfall: 2}

	var buf bytes.Buffer
	require.NoError(t, WriteManifest(&buf, manifest))

	got, err := ReadManifest(&buf)
	require.NoError(t, err)
	assert.Equal(t, manifest.RunID, got.RunID)
	assert.True(t, manifest.Created.Equal(got.Created))
	assert.Equal(t, manifest.Boundary, got.Boundary)
	assert.Equal(t, manifest.Counts, got.Counts)
	params, ok := got.Params.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, int64(500), params["target"])
}

func TestWriteAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	out := Output{Dir: dir, Vert: true, Triv: true, OBJ: true, STL: true, GeoJSON: true, Manifest: true}
	manifest := NewManifest("square.obj", "dev")

	written, err := WriteAll(out, square(), Artifacts{Manifest: manifest})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, VertFile),
		filepath.Join(dir, TrivFile),
		filepath.Join(dir, "square.obj"),
		filepath.Join(dir, "square.stl"),
		filepath.Join(dir, "square.geojson"),
		filepath.Join(dir, "square.toml"),
	}, written)
	assert.Len(t, manifest.Files, 5)
	for _, path := range written {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0), path)
	}
}

func TestLoadFormats(t *testing.T) {
	dir := t.TempDir()

	objPath := filepath.Join(dir, "quad.obj")
	require.NoError(t, os.WriteFile(objPath, []byte("v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 4\n"), 0o644))
	m, err := Load(context.Background(), objPath)
	require.NoError(t, err)
	assert.Equal(t, "quad", m.Name)
	assert.Equal(t, 2, m.TriangleCount())

	offPath := filepath.Join(dir, "quad.off")
	off := "OFF\n4 2 0\n0 0 0\n1 0 0\n1 1 0\n0 1 0\n3 0 1 2\n3 0 2 3\n"
	require.NoError(t, os.WriteFile(offPath, []byte(off), 0o644))
	m, err = Load(context.Background(), offPath)
	require.NoError(t, err)
	assert.Equal(t, 2, m.TriangleCount())
	assert.Equal(t, 4, m.VertexCount())

	stlPath := filepath.Join(dir, "quad.stl")
	f, err := os.Create(stlPath)
	require.NoError(t, err)
	require.NoError(t, WriteSTL(f, m))
	require.NoError(t, f.Close())
	m, err = Load(context.Background(), stlPath)
	require.NoError(t, err)
	assert.Equal(t, 4, m.VertexCount())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(context.Background(), "mesh.ply")
	assert.ErrorContains(t, err, "unsupported mesh format")

	bad := filepath.Join(t.TempDir(), "bad.obj")
	require.NoError(t, os.WriteFile(bad, []byte("v 0 0 0\nf 1 1 7\n"), 0o644))
	_, err = Load(context.Background(), bad)
	assert.ErrorIs(t, err, mesh.ErrIndexOutOfRange)
}

func TestWatchList(t *testing.T) {
	files, err := WatchList("part.stl")
	require.NoError(t, err)
	assert.Equal(t, []string{"part.stl"}, files)

	dir := t.TempDir()
	scad := filepath.Join(dir, "part.scad")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lib.scad"), []byte("module m() {}\n"), 0o644))
	require.NoError(t, os.WriteFile(scad, []byte("use <lib.scad>\nm();\n"), 0o644))
	files, err = WatchList(scad)
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "part", BaseName(filepath.Join("a", "b", "part.stl")))
	assert.Equal(t, geometry.Vector3{X: 1, Y: 2, Z: 3}, vector(coord(geometry.NewVector3(1, 2, 3))))
}
