package remesh

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResampleBoundaryUnitSquare(t *testing.T) {
	chain := ResampleBoundary(unitSquare(), 0.5)

	expected := []orb.Point{
		{0, 0}, {0.5, 0}, {1, 0}, {1, 0.5},
		{1, 1}, {0.5, 1}, {0, 1}, {0, 0.5},
	}
	require.Len(t, chain, len(expected))
	for i := range expected {
		assert.InDelta(t, expected[i][0], chain[i][0], 1e-12, "point %d x", i)
		assert.InDelta(t, expected[i][1], chain[i][1], 1e-12, "point %d y", i)
	}
}

func TestResampleBoundaryRoundsSteps(t *testing.T) {
	// 1/0.45 = 2.22 rounds to 2 steps per edge
	chain := ResampleBoundary(unitSquare(), 0.45)
	assert.Len(t, chain, 8)

	// 1/0.3 = 3.33 rounds to 3
	chain = ResampleBoundary(unitSquare(), 0.3)
	assert.Len(t, chain, 12)
}

func TestResampleBoundaryZeroLengthEdges(t *testing.T) {
	loop := []orb.Point{{0, 0}, {0, 0}, {1, 0}, {0, 1}}
	chain := ResampleBoundary(loop, 10)

	assert.Equal(t, loop, chain)
}

func TestResampleBoundaryNonPositiveSpacing(t *testing.T) {
	assert.Equal(t, lShape(), ResampleBoundary(lShape(), 0))
}

func TestResampleBoundaryPreservesPerimeter(t *testing.T) {
	loop := lShape()
	chain := ResampleBoundary(loop, 0.07)

	assert.GreaterOrEqual(t, len(chain), len(loop))
	assert.InDelta(t, NewPolygon(loop).Perimeter(), NewPolygon(chain).Perimeter(), 1e-9)

	for i, p := range chain {
		q := chain[(i+1)%len(chain)]
		assert.LessOrEqual(t, planar.Distance(p, q), 0.07*1.5+1e-9)
	}
}

func TestSimplifyBoundary(t *testing.T) {
	// square with a redundant point halfway along every edge
	loop := ResampleBoundary(unitSquare(), 0.5)
	simplified := SimplifyBoundary(loop, 1e-6)

	assert.Len(t, simplified, 4)
	assert.InDelta(t, 1.0, NewPolygon(simplified).Area(), 1e-12)
}

func TestSimplifyBoundaryKeepsInputWhenCollapsed(t *testing.T) {
	loop := []orb.Point{{0, 0}, {1, 0}, {1, 0.001}}
	assert.Equal(t, loop, SimplifyBoundary(loop, 1))
}

func TestPolygon(t *testing.T) {
	poly := NewPolygon(lShape())

	assert.True(t, poly.Contains(orb.Point{0.5, 0.5}))
	assert.True(t, poly.Contains(orb.Point{1.5, 0.5}))
	assert.False(t, poly.Contains(orb.Point{1.5, 1.5}))
	assert.False(t, poly.Contains(orb.Point{-0.1, 0.5}))

	// the outline itself is outside
	for _, p := range []orb.Point{{0, 0}, {1, 0}, {0.5, 0}, {2, 0.5}, {1, 1.5}, {1.5, 1}, {0, 2}} {
		assert.False(t, poly.Contains(p), "%v", p)
	}
	assert.True(t, poly.Contains(orb.Point{1e-6, 1e-6}))

	assert.InDelta(t, 3.0, poly.Area(), 1e-12)
	assert.InDelta(t, 8.0, poly.Perimeter(), 1e-12)
	assert.True(t, poly.Ring().Closed())

	assert.False(t, NewPolygon([]orb.Point{{0, 0}, {1, 1}}).Contains(orb.Point{0.5, 0.5}))
	assert.False(t, math.IsNaN(NewPolygon(nil).Area()))
}
