package remesh

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/simplify"
)

// DefaultSpacing is the target boundary segment length in input units
const DefaultSpacing = 0.05

// ResampleBoundary subdivides every edge of the closed loop into
// max(1, round(length/spacing)) equal segments and returns the segment start
// points in loop order. Segment end points are the next segment's start, so
// no point is emitted twice. A non-positive spacing keeps the loop as is.
func ResampleBoundary(loop []orb.Point, spacing float64) []orb.Point {
	n := len(loop)
	chain := make([]orb.Point, 0, n)
	for i, a := range loop {
		b := loop[(i+1)%n]
		steps := 1
		if spacing > 0 {
			steps = max(1, int(math.Round(planar.Distance(a, b)/spacing)))
		}
		for j := 0; j < steps; j++ {
			t := float64(j) / float64(steps)
			chain = append(chain, orb.Point{
				a[0] + (b[0]-a[0])*t,
				a[1] + (b[1]-a[1])*t,
			})
		}
	}
	return chain
}

// SimplifyBoundary drops loop corners closer than tolerance to the outline
// of their neighbours (Douglas-Peucker). Results with fewer than three
// corners are discarded in favour of the input.
func SimplifyBoundary(loop []orb.Point, tolerance float64) []orb.Point {
	if tolerance <= 0 || len(loop) < 4 {
		return loop
	}

	ring := NewPolygon(loop).Ring().Clone()
	simplified := simplify.DouglasPeucker(tolerance).Ring(ring)
	if len(simplified) < 4 {
		return loop
	}
	return []orb.Point(simplified[:len(simplified)-1])
}
