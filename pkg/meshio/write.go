package meshio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/philipparndt/meshsample/pkg/mesh"
	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// WriteVert writes one "x y z" line per vertex with six decimals
func WriteVert(w io.Writer, m *mesh.Mesh) error {
	bw := bufio.NewWriter(w)
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "%.6f %.6f %.6f\n", v.X, v.Y, v.Z)
	}
	return errors.Wrap(bw.Flush(), "write vertex file")
}

// WriteTriv writes one line of three 1-based vertex indices per triangle
func WriteTriv(w io.Writer, m *mesh.Mesh) error {
	bw := bufio.NewWriter(w)
	for _, t := range m.Triangles {
		fmt.Fprintf(bw, "%d %d %d\n", t[0]+1, t[1]+1, t[2]+1)
	}
	return errors.Wrap(bw.Flush(), "write triangle file")
}

// WriteOBJ writes "v x y z" lines followed by 1-based "f i j k" lines
func WriteOBJ(w io.Writer, m *mesh.Mesh) error {
	bw := bufio.NewWriter(w)
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %.6f %.6f %.6f\n", v.X, v.Y, v.Z)
	}
	for _, t := range m.Triangles {
		fmt.Fprintf(bw, "f %d %d %d\n", t[0]+1, t[1]+1, t[2]+1)
	}
	return errors.Wrap(bw.Flush(), "write obj file")
}

// WriteSTL writes the mesh as binary STL
func WriteSTL(w io.Writer, m *mesh.Mesh) error {
	triangles := make([]*model3d.Triangle, len(m.Triangles))
	for i, t := range m.Triangles {
		triangles[i] = &model3d.Triangle{
			coord(m.Vertices[t[0]]),
			coord(m.Vertices[t[1]]),
			coord(m.Vertices[t[2]]),
		}
	}
	return errors.Wrap(model3d.WriteSTL(w, triangles), "write stl file")
}

// WriteGeoJSON writes the boundary chain as a closed LineString feature
// followed by one Polygon feature per triangle, using planar coordinates.
func WriteGeoJSON(w io.Writer, m *mesh.Mesh, boundary []orb.Point) error {
	fc := geojson.NewFeatureCollection()

	if len(boundary) > 0 {
		line := make(orb.LineString, 0, len(boundary)+1)
		line = append(line, boundary...)
		line = append(line, boundary[0])
		f := geojson.NewFeature(line)
		f.Properties["kind"] = "boundary"
		f.Properties["points"] = len(boundary)
		fc.Append(f)
	}

	points := m.Planar()
	for i, t := range m.Triangles {
		ring := orb.Ring{points[t[0]], points[t[1]], points[t[2]], points[t[0]]}
		f := geojson.NewFeature(orb.Polygon{ring})
		f.Properties["kind"] = "triangle"
		f.Properties["index"] = i
		fc.Append(f)
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "encode geojson")
	}
	_, err = w.Write(data)
	return errors.Wrap(err, "write geojson file")
}
