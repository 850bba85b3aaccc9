package meshio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/philipparndt/meshsample/pkg/geometry"
	"github.com/philipparndt/meshsample/pkg/mesh"
	"github.com/pkg/errors"
)

// ReadVert reads a vertex file written by WriteVert
func ReadVert(r io.Reader) ([]geometry.Vector3, error) {
	var vertices []geometry.Vector3
	err := scanLines(r, func(lineNo int, fields []string) error {
		if len(fields) != 3 {
			return errors.Errorf("line %d: expected 3 coordinates, got %d", lineNo, len(fields))
		}
		c, err := parseFloats(fields)
		if err != nil {
			return errors.Wrapf(err, "line %d", lineNo)
		}
		vertices = append(vertices, geometry.NewVector3(c[0], c[1], c[2]))
		return nil
	})
	return vertices, errors.Wrap(err, "read vertex file")
}

// ReadTriv reads a triangle file of 1-based indices into 0-based triangles
func ReadTriv(r io.Reader) ([]mesh.Triangle, error) {
	var triangles []mesh.Triangle
	err := scanLines(r, func(lineNo int, fields []string) error {
		if len(fields) != 3 {
			return errors.Errorf("line %d: expected 3 indices, got %d", lineNo, len(fields))
		}
		var t mesh.Triangle
		for i, f := range fields {
			idx, err := strconv.Atoi(f)
			if err != nil {
				return errors.Wrapf(err, "line %d", lineNo)
			}
			if idx < 1 {
				return errors.Errorf("line %d: index %d is not 1-based", lineNo, idx)
			}
			t[i] = idx - 1
		}
		triangles = append(triangles, t)
		return nil
	})
	return triangles, errors.Wrap(err, "read triangle file")
}

// ReadOBJ reads the vertices and faces of a Wavefront OBJ file. Faces with
// more than three corners are fan triangulated; texture and normal
// references are ignored and negative indices count back from the end.
func ReadOBJ(r io.Reader) (*mesh.Mesh, error) {
	m := mesh.New("")
	err := scanLines(r, func(lineNo int, fields []string) error {
		switch fields[0] {
		case "o":
			if len(fields) > 1 && m.Name == "" {
				m.Name = strings.Join(fields[1:], " ")
			}
		case "v":
			if len(fields) < 4 {
				return errors.Errorf("line %d: vertex needs 3 coordinates", lineNo)
			}
			c, err := parseFloats(fields[1:4])
			if err != nil {
				return errors.Wrapf(err, "line %d", lineNo)
			}
			m.Vertices = append(m.Vertices, geometry.NewVector3(c[0], c[1], c[2]))
		case "f":
			if len(fields) < 4 {
				return errors.Errorf("line %d: face needs at least 3 vertices", lineNo)
			}
			corners := make([]int, len(fields)-1)
			for i, ref := range fields[1:] {
				idx, err := objIndex(ref, len(m.Vertices))
				if err != nil {
					return errors.Wrapf(err, "line %d", lineNo)
				}
				corners[i] = idx
			}
			for i := 1; i+1 < len(corners); i++ {
				m.Triangles = append(m.Triangles, mesh.Triangle{corners[0], corners[i], corners[i+1]})
			}
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "read obj file")
	}
	return m, nil
}

// objIndex resolves a face reference such as "7", "7/2", "7//3" or "-1"
func objIndex(ref string, vertexCount int) (int, error) {
	if slash := strings.IndexByte(ref, '/'); slash >= 0 {
		ref = ref[:slash]
	}
	idx, err := strconv.Atoi(ref)
	if err != nil {
		return 0, err
	}
	switch {
	case idx > 0:
		return idx - 1, nil
	case idx < 0 && vertexCount+idx >= 0:
		return vertexCount + idx, nil
	}
	return 0, errors.Errorf("invalid vertex reference %q", ref)
}

// scanLines calls fn with the fields of every non-blank, non-comment line
func scanLines(r io.Reader, fn func(lineNo int, fields []string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := fn(lineNo, strings.Fields(line)); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func parseFloats(fields []string) ([]float64, error) {
	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}
