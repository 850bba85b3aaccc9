package remesh

import (
	"math/rand"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatticeSize(t *testing.T) {
	tests := []struct {
		target   int
		expected int
	}{
		{0, 2}, {4, 2}, {11, 2}, {15, 3}, {50, 10}, {1000, 200},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, LatticeSize(tt.target), "target %d", tt.target)
	}
}

func TestParseSamplerKind(t *testing.T) {
	kind, err := ParseSamplerKind("poisson")
	require.NoError(t, err)
	assert.Equal(t, PoissonSampler, kind)

	kind, err = ParseSamplerKind("")
	require.NoError(t, err)
	assert.Equal(t, GridSampler, kind)

	_, err = ParseSamplerKind("hexagonal")
	assert.Error(t, err)
}

func TestSampleInteriorInsidePolygon(t *testing.T) {
	poly := NewPolygon(lShape())
	cfg := SamplerConfig{Kind: GridSampler, Jitter: DefaultJitter, Rand: rand.New(rand.NewSource(7))}

	points := SampleInterior(poly, poly.Bound(), 200, cfg)
	require.NotEmpty(t, points)
	// 40x40 lattice over a 2x2 box of which the L covers three quarters
	assert.Less(t, len(points), 40*40)
	for _, p := range points {
		assert.True(t, poly.Contains(p), "point %v outside", p)
		assert.False(t, p[0] > 1 && p[1] > 1, "point %v in the notch", p)
	}
}

func TestSampleInteriorWithoutJitter(t *testing.T) {
	poly := NewPolygon(unitSquare())
	points := SampleInterior(poly, poly.Bound(), 20, SamplerConfig{Jitter: 0})

	// a 4x4 lattice over the box; the 12 nodes on the outline are dropped
	expected := []orb.Point{{1.0 / 3, 1.0 / 3}, {2.0 / 3, 1.0 / 3}, {1.0 / 3, 2.0 / 3}, {2.0 / 3, 2.0 / 3}}
	require.Len(t, points, len(expected))
	for i, p := range expected {
		assert.InDelta(t, p[0], points[i][0], 1e-12)
		assert.InDelta(t, p[1], points[i][1], 1e-12)
	}
}

func TestSampleInteriorDeterministic(t *testing.T) {
	poly := NewPolygon(lShape())
	run := func(workers int) []orb.Point {
		cfg := SamplerConfig{Jitter: DefaultJitter, Rand: rand.New(rand.NewSource(3)), Workers: workers}
		return SampleInterior(poly, poly.Bound(), 500, cfg)
	}

	first := run(1)
	assert.Equal(t, first, run(1))
	// 100x100 lattice, large enough to be split across goroutines
	assert.Equal(t, first, run(4))
}

func TestSampleInteriorDegenerateBound(t *testing.T) {
	poly := NewPolygon(unitSquare())
	bound := orb.Bound{Min: orb.Point{0.5, 0.5}, Max: orb.Point{0.5, 0.5}}

	assert.Empty(t, SampleInterior(poly, bound, 100, SamplerConfig{Jitter: DefaultJitter}))
}

func TestSampleInteriorPoisson(t *testing.T) {
	poly := NewPolygon(lShape())
	cfg := SamplerConfig{Kind: PoissonSampler, Rand: rand.New(rand.NewSource(11))}

	points := SampleInterior(poly, poly.Bound(), 100, cfg)
	require.NotEmpty(t, points)
	for _, p := range points {
		assert.True(t, poly.Contains(p), "point %v outside", p)
	}
}
