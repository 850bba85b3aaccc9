package remesh

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"runtime"

	"github.com/paulmach/orb"
	"github.com/philipparndt/meshsample/pkg/geometry"
	"github.com/philipparndt/meshsample/pkg/mesh"
)

// DefaultTarget is the output vertex count used by the CLI
const DefaultTarget = 500

// Options configures Resample
type Options struct {
	// Target is the exact number of output vertices
	Target int
	// Spacing is the boundary resampling distance; non-positive keeps the traced corners only
	Spacing float64

	// TopFace runs the normal filter before tracing (3D pipeline)
	TopFace      bool
	Axis         geometry.Vector3
	CosThreshold float64

	// Simplify is the Douglas-Peucker tolerance applied to the traced loop; 0 disables it
	Simplify float64

	Sampler SamplerKind
	Jitter  float64
	// Seed initializes the generator when Rand is nil
	Seed int64
	Rand *rand.Rand

	Workers int
	Logger  *log.Logger
}

// DefaultOptions returns the options used when nothing is configured
func DefaultOptions() Options {
	return Options{
		Target:       DefaultTarget,
		Spacing:      DefaultSpacing,
		Axis:         UpAxis,
		CosThreshold: DefaultCosThreshold,
		Sampler:      GridSampler,
		Jitter:       DefaultJitter,
		Seed:         1,
		Workers:      runtime.NumCPU(),
	}
}

// Result is the output of one pipeline run
type Result struct {
	// Mesh is the resampled planar mesh (z = 0); its vertices are Points
	Mesh *mesh.Mesh
	// Points are plane coordinates under Projection. Without a top-face
	// axis other than +Z they are the input X and Y.
	Points    []orb.Point
	Triangles []mesh.Triangle

	Projection Projection
	Trace      Trace
	// Loop holds the traced boundary coordinates after optional simplification
	Loop []orb.Point
	// ChainLen is the number of resampled boundary points, the first ChainLen entries of Points
	ChainLen int
	// Candidates is the number of interior candidates the sampler kept
	Candidates int
	// FilteredTriangles is the number of input triangles the pipeline worked on
	FilteredTriangles int
	Requested         int
	// Shortfall is Requested minus the number of selected points when the candidate pool ran out
	Shortfall int
}

// Resample runs the whole pipeline on m: optional top-face isolation,
// boundary tracing (with convex hull fallback), boundary resampling, interior
// sampling, farthest point selection and retriangulation.
//
// A target below the resampled chain length fails with ErrInvalidTarget and
// no output. Running out of candidates is not an error; it is reported in
// Result.Shortfall.
func Resample(m *mesh.Mesh, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if m == nil || len(m.Triangles) == 0 {
		return nil, fmt.Errorf("%w: no triangles", ErrEmptyMesh)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	work := m
	projection := NewProjection(UpAxis)
	if opts.TopFace {
		projection = NewProjection(opts.Axis)
		top, err := FilterTopFace(m, projection.Axis, opts.CosThreshold)
		if err != nil {
			return nil, err
		}
		logger.Printf("top face: kept %d of %d triangles (%d degenerate)", len(top.Kept), len(m.Triangles), top.Degenerate)
		work = top.Mesh
	}

	points := projection.Points(work.Vertices)
	trace := TraceBoundary(points, work.Triangles)
	if trace.Kind == HullFallback {
		logger.Printf("boundary fallback: %v; using convex hull of %d points", trace.Reason, len(trace.Loop))
	}
	if len(trace.Loop) < 3 {
		return nil, fmt.Errorf("%w: boundary has %d distinct points", ErrEmptyMesh, len(trace.Loop))
	}

	loop := make([]orb.Point, len(trace.Loop))
	for i, v := range trace.Loop {
		loop[i] = points[v]
	}
	if opts.Simplify > 0 {
		before := len(loop)
		loop = SimplifyBoundary(loop, opts.Simplify)
		logger.Printf("simplified boundary from %d to %d points", before, len(loop))
	}

	chain := ResampleBoundary(loop, opts.Spacing)
	if opts.Target < len(chain) {
		return nil, &TargetError{Target: opts.Target, ChainLen: len(chain)}
	}
	logger.Printf("boundary: %s with %d points, resampled to %d", trace.Kind, len(loop), len(chain))

	rnd := opts.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewSource(opts.Seed))
	}
	poly := NewPolygon(loop)
	interior := SampleInterior(poly, usedBound(points, work.Triangles), opts.Target, SamplerConfig{
		Kind:    opts.Sampler,
		Jitter:  opts.Jitter,
		Rand:    rnd,
		Workers: opts.Workers,
	})
	logger.Printf("interior: %d candidates (%s sampler)", len(interior), samplerName(opts.Sampler))

	pool := make([]orb.Point, 0, len(chain)+len(interior))
	pool = append(pool, chain...)
	pool = append(pool, interior...)

	selected, err := SelectFarthest(pool, len(chain), opts.Target, opts.Workers)
	if err != nil {
		return nil, err
	}
	final := make([]orb.Point, len(selected))
	for i, idx := range selected {
		final[i] = pool[idx]
	}

	result := &Result{
		Points:            final,
		Projection:        projection,
		Trace:             trace,
		Loop:              loop,
		ChainLen:          len(chain),
		Candidates:        len(interior),
		FilteredTriangles: len(work.Triangles),
		Requested:         opts.Target,
		Shortfall:         opts.Target - len(final),
	}
	if result.Shortfall > 0 {
		logger.Printf("warning: candidate pool exhausted, selected %d of %d requested points", len(final), opts.Target)
	}

	triangles, err := Retriangulate(final, poly)
	if err != nil {
		return nil, err
	}
	logger.Printf("retriangulated: %d triangles over %d points", len(triangles), len(final))

	result.Triangles = triangles
	result.Mesh = mesh.FromPlanar(m.Name, final, triangles)
	return result, nil
}

func usedBound(points []orb.Point, triangles []mesh.Triangle) orb.Bound {
	used := referencedVertices(triangles)
	bound := orb.Bound{Min: points[used[0]], Max: points[used[0]]}
	for _, v := range used[1:] {
		bound = bound.Extend(points[v])
	}
	return bound
}

func samplerName(kind SamplerKind) SamplerKind {
	if kind == "" {
		return GridSampler
	}
	return kind
}
