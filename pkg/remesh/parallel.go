package remesh

import "github.com/unixpickle/essentials"

// minParallel is the smallest range worth splitting across goroutines
const minParallel = 4096

// forRange calls f over [0, n) split in contiguous chunks. Chunks run
// concurrently when workers > 1 and the range is large enough; f must only
// write to indices inside its chunk.
func forRange(n, workers int, f func(start, end int)) {
	if workers <= 1 || n < minParallel {
		f(0, n)
		return
	}

	chunks := workers * 4
	size := (n + chunks - 1) / chunks
	essentials.ConcurrentMap(workers, chunks, func(c int) {
		start := c * size
		end := min(start+size, n)
		if start < end {
			f(start, end)
		}
	})
}
