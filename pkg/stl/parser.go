package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/meshsample/pkg/geometry"
	"github.com/philipparndt/meshsample/pkg/mesh"
)

const (
	headerSize = 80
	facetSize  = 50 // normal + 3 vertices (12 float32) + attribute byte count
)

// Parse reads an STL file and returns an indexed mesh
func Parse(filename string) (*mesh.Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Read(file)
}

// Read decodes an ASCII or binary STL stream into an indexed mesh.
// Facet corners with identical coordinates are welded into one vertex, so
// the mesh carries the connectivity the format itself does not store.
// Stored facet normals are ignored; orientation comes from the winding.
func Read(reader io.Reader) (*mesh.Mesh, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read STL data: %w", err)
	}

	// Binary files may also start with "solid", so the size check comes first
	if isBinary(data) {
		return parseBinary(data)
	}
	if bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), []byte("solid")) {
		return parseASCII(bytes.NewReader(data))
	}
	return parseBinary(data)
}

func isBinary(data []byte) bool {
	if len(data) < headerSize+4 {
		return false
	}
	count := binary.LittleEndian.Uint32(data[headerSize : headerSize+4])
	return uint64(len(data)) == uint64(headerSize+4)+uint64(count)*facetSize
}

// parseASCII parses an ASCII STL file
func parseASCII(reader io.Reader) (*mesh.Mesh, error) {
	scanner := bufio.NewScanner(reader)
	welder := mesh.NewWelder("")

	var vertices []geometry.Vector3
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				welder.SetName(strings.Join(fields[1:], " "))
			}

		case "vertex":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", lineNo)
			}
			var coords [3]float64
			for i := range coords {
				v, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: invalid coordinate %q: %w", lineNo, fields[i+1], err)
				}
				coords[i] = v
			}
			vertices = append(vertices, geometry.NewVector3(coords[0], coords[1], coords[2]))

		case "endfacet":
			if len(vertices) != 3 {
				return nil, fmt.Errorf("line %d: facet has %d vertices, expected 3", lineNo, len(vertices))
			}
			welder.AddFacet(vertices[0], vertices[1], vertices[2])
			vertices = vertices[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}

	return welder.Mesh(), nil
}

// parseBinary parses a binary STL file
func parseBinary(data []byte) (*mesh.Mesh, error) {
	if len(data) < headerSize+4 {
		return nil, fmt.Errorf("binary STL too short: %d bytes", len(data))
	}

	welder := mesh.NewWelder(strings.TrimSpace(string(bytes.TrimRight(data[:headerSize], "\x00"))))
	triangleCount := binary.LittleEndian.Uint32(data[headerSize : headerSize+4])

	body := data[headerSize+4:]
	if uint64(len(body)) < uint64(triangleCount)*facetSize {
		return nil, fmt.Errorf("binary STL truncated: header declares %d triangles, data holds %d",
			triangleCount, len(body)/facetSize)
	}

	reader := bytes.NewReader(body)
	for i := uint32(0); i < triangleCount; i++ {
		var facet struct {
			Normal     [3]float32
			V1, V2, V3 [3]float32
			Attribute  uint16
		}
		if err := binary.Read(reader, binary.LittleEndian, &facet); err != nil {
			return nil, fmt.Errorf("failed to read triangle %d: %w", i, err)
		}
		welder.AddFacet(toVector(facet.V1), toVector(facet.V2), toVector(facet.V3))
	}

	return welder.Mesh(), nil
}

func toVector(v [3]float32) geometry.Vector3 {
	return geometry.NewVector3(float64(v[0]), float64(v[1]), float64(v[2]))
}
