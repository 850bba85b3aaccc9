package remesh

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// SelectFarthest grows a point selection greedily. The first chainLen pool
// entries (the boundary chain) are always selected, in order. Then, until the
// selection holds target points, the unselected candidate whose distance to
// the nearest selected point is largest is appended; ties go to the earliest
// pool entry. The returned indices are in selection order.
//
// A target below chainLen is rejected with a *TargetError. When the pool runs
// out first, fewer than target indices are returned.
func SelectFarthest(pool []orb.Point, chainLen, target, workers int) ([]int, error) {
	if chainLen < 0 || chainLen > len(pool) {
		return nil, fmt.Errorf("boundary chain of %d points does not fit a pool of %d", chainLen, len(pool))
	}
	if target < chainLen {
		return nil, &TargetError{Target: target, ChainLen: chainLen}
	}

	selected := make([]int, 0, min(target, len(pool)))
	taken := make([]bool, len(pool))
	for i := 0; i < chainLen; i++ {
		selected = append(selected, i)
		taken[i] = true
	}

	// nearest[i] is the squared distance from pool[i] to the closest selected point
	nearest := make([]float64, len(pool))
	forRange(len(pool), workers, func(start, end int) {
		for i := start; i < end; i++ {
			best := math.Inf(1)
			if !taken[i] {
				for _, s := range selected {
					best = math.Min(best, planar.DistanceSquared(pool[i], pool[s]))
				}
			}
			nearest[i] = best
		}
	})

	for len(selected) < target {
		pick := -1
		for i, d := range nearest {
			if taken[i] {
				continue
			}
			if pick < 0 || d > nearest[pick] {
				pick = i
			}
		}
		if pick < 0 {
			break
		}

		selected = append(selected, pick)
		taken[pick] = true
		p := pool[pick]
		forRange(len(pool), workers, func(start, end int) {
			for i := start; i < end; i++ {
				if d := planar.DistanceSquared(pool[i], p); d < nearest[i] {
					nearest[i] = d
				}
			}
		})
	}
	return selected, nil
}
