package meshio

import (
	"io"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Manifest records how a set of artifacts was produced
type Manifest struct {
	RunID   string    `toml:"run_id"`
	Created time.Time `toml:"created"`
	Version string    `toml:"version"`
	Input   string    `toml:"input"`

	Params   any              `toml:"params,omitempty"`
	Boundary ManifestBoundary `toml:"boundary"`
	Counts   ManifestCounts   `toml:"counts"`
	Files    []string         `toml:"files"`
}

// ManifestBoundary describes how the boundary loop was obtained
type ManifestBoundary struct {
	Kind   string `toml:"kind"`
	Reason string `toml:"reason,omitempty"`
	Loop   int    `toml:"loop"`
	Chain  int    `toml:"chain"`
}

// ManifestCounts holds the sizes of the run's stages
type ManifestCounts struct {
	InputVertices     int `toml:"input_vertices"`
	InputTriangles    int `toml:"input_triangles"`
	FilteredTriangles int `toml:"filtered_triangles"`
	Candidates        int `toml:"candidates"`
	Requested         int `toml:"requested"`
	Vertices          int `toml:"vertices"`
	Triangles         int `toml:"triangles"`
	Shortfall         int `toml:"shortfall"`
}

// NewManifest starts a manifest with a fresh run id
func NewManifest(input, version string) *Manifest {
	return &Manifest{
		RunID:   uuid.New().String(),
		Created: time.Now().UTC().Truncate(time.Second),
		Version: version,
		Input:   input,
	}
}

// WriteManifest encodes the manifest as TOML
func WriteManifest(w io.Writer, m *Manifest) error {
	return errors.Wrap(toml.NewEncoder(w).Encode(m), "write manifest")
}

// ReadManifest decodes a manifest written by WriteManifest. Params are
// decoded into a generic table.
func ReadManifest(r io.Reader) (*Manifest, error) {
	var m Manifest
	if _, err := toml.NewDecoder(r).Decode(&m); err != nil {
		return nil, errors.Wrap(err, "read manifest")
	}
	if _, err := uuid.Parse(m.RunID); err != nil {
		return nil, errors.Wrapf(err, "manifest run id %q", m.RunID)
	}
	return &m, nil
}
