package search

import (
	"sync"
	"sync/atomic"

	"seedforge.dev/internal/structures"
)

// BruteForce completes each surviving low-bit candidate with every possible
// upper 28 bits, verifying the full constraint set against each assembled
// seed. Work is partitioned across workers by a single shared task index
// rather than pre-sliced ranges, so a worker that lands on cheap candidates
// doesn't sit idle while another works through expensive ones.
//
// Results are collected per worker and merged at the end instead of
// appended to a shared slice under a lock, so the hot verification loop
// never contends on anything but the index counter.
//
// If reporter is non-nil and progressEvery > 0, it is called with the
// candidate index and total every progressEvery candidates. Each index is
// claimed by exactly one worker, so the check never double-reports.
func BruteForce(lows []uint32, constraints []structures.Constraint, workers int, progressEvery int64, reporter ProgressReporter) []int64 {
	if workers <= 0 {
		workers = 1
	}
	const upperSpace = int64(1) << 28
	total := int64(len(lows)) * upperSpace
	if total == 0 {
		return nil
	}

	var next atomic.Int64
	partials := make([][]int64, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			var found []int64
			for {
				idx := next.Add(1) - 1
				if idx >= total {
					break
				}
				if reporter != nil && progressEvery > 0 && idx%progressEvery == 0 {
					reporter.Report(idx, total)
				}
				lowIdx := idx / upperSpace
				u := idx % upperSpace
				seed := rebuildSeed(lows[lowIdx], uint32(u))
				if structures.VerifyAll(seed, constraints) {
					found = append(found, seed)
				}
			}
			partials[w] = found
		}(w)
	}
	wg.Wait()

	var results []int64
	for _, p := range partials {
		results = append(results, p...)
	}
	return results
}

// rebuildSeed assembles a signed 48-bit seed from its low 20 bits and its
// upper 28 bits.
func rebuildSeed(low uint32, upper uint32) int64 {
	u := (uint64(upper) << lowBits) | uint64(low)
	return int64(int64(u<<16) >> 16)
}
