package search

import (
	"sync"
	"sync/atomic"

	"seedforge.dev/internal/rng"
	"seedforge.dev/internal/structures"
)

// PillarSeedSolver derives the middle 32 bits of the structure seed from a
// 32-bit pillar seed and enumerates the remaining upper 16 bits, producing
// 2^16 * 2^16 candidates rather than the full 2^48 space.
//
// For every completion of the pillar seed's unknown lower 16 bits, two
// fixed-point steps of a second, unrelated LCG (PillarMult/PillarAdd,
// modulo 2^64) yield a 32-bit "mid" fragment. Each mid fragment is then
// completed on its high side by every possible upper 16 bits and verified
// in full.
//
// If reporter is non-nil and progressEvery > 0, it is called with the
// candidate index and total every progressEvery candidates.
func PillarSeedSolver(pillarSeed uint32, constraints []structures.Constraint, workers int, progressEvery int64, reporter ProgressReporter) []int64 {
	if workers <= 0 {
		workers = 1
	}
	const space16 = 1 << 16
	mids := make([]uint32, space16)
	for lower16 := uint32(0); lower16 < space16; lower16++ {
		partial := (uint64(pillarSeed) << 16) | uint64(lower16)
		s1 := partial*uint64(rng.PillarMult) + uint64(rng.PillarAdd)
		s2 := s1*uint64(rng.PillarMult) + uint64(rng.PillarAdd)
		mids[lower16] = uint32(s2^rng.Xor) & 0xFFFFFFFF
	}

	total := int64(space16) * int64(space16)
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
				midIdx := idx / space16
				upper16 := uint32(idx % space16)
				candidate := (uint64(upper16) << 32) | uint64(mids[midIdx])
				seed := rng.ToSigned48(candidate & rng.Mask48)
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
