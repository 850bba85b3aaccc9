// Package meshio loads input meshes in the supported formats and writes the
// artifacts of a run: vertex and triangle files, OBJ, STL, GeoJSON and a
// TOML run manifest.
package meshio

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/meshsample/pkg/geometry"
	"github.com/philipparndt/meshsample/pkg/mesh"
	"github.com/philipparndt/meshsample/pkg/openscad"
	"github.com/philipparndt/meshsample/pkg/stl"
	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// Formats lists the input extensions Load understands
var Formats = []string{".stl", ".obj", ".off", ".scad"}

// Load reads a mesh, choosing the decoder from the file extension. OpenSCAD
// sources are rendered first, which needs the openscad executable.
func Load(ctx context.Context, path string) (*mesh.Mesh, error) {
	var (
		m   *mesh.Mesh
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".stl":
		m, err = stl.Parse(path)
	case ".obj":
		m, err = loadWith(path, ReadOBJ)
	case ".off":
		m, err = loadWith(path, readOFF)
	case ".scad":
		m, err = renderSCAD(ctx, path)
	default:
		return nil, errors.Errorf("unsupported mesh format %q (expected one of %s)", ext, strings.Join(Formats, ", "))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}

	if m.Name == "" {
		m.Name = BaseName(path)
	}
	if err := m.Validate(); err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return m, nil
}

// WatchList returns the files whose changes affect the mesh loaded from path
func WatchList(path string) ([]string, error) {
	if strings.ToLower(filepath.Ext(path)) != ".scad" {
		return []string{path}, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(err, "resolve input path")
	}
	return openscad.NewRenderer(filepath.Dir(abs)).ResolveDependencies(abs)
}

// BaseName returns the file name without directory and extension
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func renderSCAD(ctx context.Context, path string) (*mesh.Mesh, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return openscad.NewRenderer(filepath.Dir(abs)).RenderMesh(ctx, abs)
}

func loadWith(path string, decode func(r io.Reader) (*mesh.Mesh, error)) (*mesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decode(f)
}

// readOFF decodes an OFF file and welds the triangle soup model3d returns
func readOFF(f io.Reader) (*mesh.Mesh, error) {
	triangles, err := model3d.ReadOFF(f)
	if err != nil {
		return nil, err
	}

	w := mesh.NewWelder("")
	for _, t := range triangles {
		w.AddFacet(vector(t[0]), vector(t[1]), vector(t[2]))
	}
	return w.Mesh(), nil
}

func vector(c model3d.Coord3D) geometry.Vector3 {
	return geometry.NewVector3(c.X, c.Y, c.Z)
}

func coord(v geometry.Vector3) model3d.Coord3D {
	return model3d.XYZ(v.X, v.Y, v.Z)
}
