package remesh

import (
	"math"
	"math/rand"

	"github.com/paulmach/orb"
)

// DiscPoints returns perimeter points evenly spaced on a circle of the given
// radius around the origin, followed by interior points scattered uniformly
// over the disc (radius scaled by the square root of a uniform draw).
func DiscPoints(interior, perimeter int, radius float64, rnd *rand.Rand) []orb.Point {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(1))
	}

	points := make([]orb.Point, 0, interior+perimeter)
	for k := 0; k < perimeter; k++ {
		theta := 2 * math.Pi * float64(k) / float64(perimeter)
		points = append(points, orb.Point{radius * math.Cos(theta), radius * math.Sin(theta)})
	}
	for i := 0; i < interior; i++ {
		r := radius * math.Sqrt(rnd.Float64())
		theta := 2 * math.Pi * rnd.Float64()
		points = append(points, orb.Point{r * math.Cos(theta), r * math.Sin(theta)})
	}
	return points
}
