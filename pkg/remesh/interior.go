package remesh

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/fogleman/poissondisc"
	"github.com/paulmach/orb"
)

// DefaultJitter is the lattice jitter as a fraction of the cell size
const DefaultJitter = 0.45

// poissonAttempts is the number of candidates tried around each active sample
const poissonAttempts = 30

// SamplerKind selects how interior candidates are generated
type SamplerKind string

const (
	// GridSampler perturbs a d x d lattice over the bounding box
	GridSampler SamplerKind = "grid"
	// PoissonSampler draws a Poisson-disc set with the lattice cell size as radius
	PoissonSampler SamplerKind = "poisson"
)

// ParseSamplerKind validates a sampler name
func ParseSamplerKind(name string) (SamplerKind, error) {
	switch SamplerKind(name) {
	case GridSampler, PoissonSampler:
		return SamplerKind(name), nil
	case "":
		return GridSampler, nil
	}
	return "", fmt.Errorf("unknown sampler %q (expected %q or %q)", name, GridSampler, PoissonSampler)
}

// SamplerConfig controls interior candidate generation
type SamplerConfig struct {
	Kind SamplerKind
	// Jitter bounds the lattice perturbation as a fraction of the cell size
	Jitter float64
	// Rand is the only source of randomness; nil means a generator seeded with 1
	Rand *rand.Rand
	// Workers parallelizes the containment tests
	Workers int
}

// LatticeSize returns d = max(2, target/5), the lattice resolution per axis
func LatticeSize(target int) int {
	return max(2, target/5)
}

// SampleInterior generates candidate points over bound and keeps the ones the
// polygon contains. The lattice has d x d points with d = LatticeSize(target);
// its cell size is the larger box extent divided by d. The result may hold
// fewer points than target for small or thin shapes.
func SampleInterior(poly Polygon, bound orb.Bound, target int, cfg SamplerConfig) []orb.Point {
	rnd := cfg.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewSource(1))
	}

	d := LatticeSize(target)
	cell := math.Max(bound.Max[0]-bound.Min[0], bound.Max[1]-bound.Min[1]) / float64(d)
	if !(cell > 0) {
		return nil
	}

	var candidates []orb.Point
	switch cfg.Kind {
	case PoissonSampler:
		for _, p := range poissondisc.Sample(bound.Min[0], bound.Min[1], bound.Max[0], bound.Max[1], cell, poissonAttempts, rnd) {
			candidates = append(candidates, orb.Point{p.X, p.Y})
		}
	default:
		candidates = jitteredLattice(bound, d, cfg.Jitter*cell, rnd)
	}

	inside := make([]bool, len(candidates))
	forRange(len(candidates), cfg.Workers, func(start, end int) {
		for i := start; i < end; i++ {
			inside[i] = poly.Contains(candidates[i])
		}
	})

	kept := make([]orb.Point, 0, len(candidates))
	for i, ok := range inside {
		if ok {
			kept = append(kept, candidates[i])
		}
	}
	return kept
}

// jitteredLattice returns d x d points evenly spaced over bound (ends
// included, x varying fastest), each moved by an independent uniform offset
// in [-amplitude, amplitude] per axis.
func jitteredLattice(bound orb.Bound, d int, amplitude float64, rnd *rand.Rand) []orb.Point {
	lerp := func(a, b float64, i int) float64 {
		return a + (b-a)*float64(i)/float64(d-1)
	}

	points := make([]orb.Point, 0, d*d)
	for iy := 0; iy < d; iy++ {
		y := lerp(bound.Min[1], bound.Max[1], iy)
		for ix := 0; ix < d; ix++ {
			x := lerp(bound.Min[0], bound.Max[0], ix)
			dx := (2*rnd.Float64() - 1) * amplitude
			dy := (2*rnd.Float64() - 1) * amplitude
			points = append(points, orb.Point{x + dx, y + dy})
		}
	}
	return points
}
