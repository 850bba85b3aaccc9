package meshio

import (
	"io"
	"os"
	"path/filepath"

	"github.com/paulmach/orb"
	"github.com/philipparndt/meshsample/pkg/mesh"
	"github.com/pkg/errors"
)

// Fixed names of the vertex and triangle files
const (
	VertFile = "mesh.vert"
	TrivFile = "mesh.triv"
)

// Output selects which artifacts are written and where
type Output struct {
	Dir string
	// Name is the base name of the OBJ, STL, GeoJSON and manifest files
	Name string

	Vert     bool
	Triv     bool
	OBJ      bool
	STL      bool
	GeoJSON  bool
	Manifest bool
}

// DefaultOutput writes the vertex, triangle and OBJ files into the working directory
func DefaultOutput() Output {
	return Output{Dir: ".", Vert: true, Triv: true, OBJ: true}
}

// Artifacts is what WriteAll needs besides the mesh
type Artifacts struct {
	Boundary []orb.Point
	Manifest *Manifest
}

// WriteAll writes the selected artifacts and returns their paths in write order.
// The manifest comes last and lists every other file.
func WriteAll(out Output, m *mesh.Mesh, extra Artifacts) ([]string, error) {
	if out.Dir == "" {
		out.Dir = "."
	}
	if out.Name == "" {
		out.Name = m.Name
	}
	if out.Name == "" {
		out.Name = "mesh"
	}
	if err := os.MkdirAll(out.Dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create output directory")
	}

	type artifact struct {
		enabled bool
		name    string
		write   func(io.Writer) error
	}
	artifacts := []artifact{
		{out.Vert, VertFile, func(w io.Writer) error { return WriteVert(w, m) }},
		{out.Triv, TrivFile, func(w io.Writer) error { return WriteTriv(w, m) }},
		{out.OBJ, out.Name + ".obj", func(w io.Writer) error { return WriteOBJ(w, m) }},
		{out.STL, out.Name + ".stl", func(w io.Writer) error { return WriteSTL(w, m) }},
		{out.GeoJSON, out.Name + ".geojson", func(w io.Writer) error { return WriteGeoJSON(w, m, extra.Boundary) }},
	}

	var written []string
	for _, a := range artifacts {
		if !a.enabled {
			continue
		}
		path := filepath.Join(out.Dir, a.name)
		if err := writeFile(path, a.write); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	if out.Manifest && extra.Manifest != nil {
		path := filepath.Join(out.Dir, out.Name+".toml")
		extra.Manifest.Files = append([]string(nil), written...)
		if err := writeFile(path, func(w io.Writer) error { return WriteManifest(w, extra.Manifest) }); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := write(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}
