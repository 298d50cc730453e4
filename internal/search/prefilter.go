// Package search implements the parallel seed-recovery strategies: the
// low-20-bit shipwreck pre-filter, the algebraic reversing solver, the
// brute-force fallback, and the pillar-seed enumerator, plus the dispatcher
// that picks among them.
package search

import (
	"seedforge.dev/internal/rng"
	"seedforge.dev/internal/structures"
)

const lowBits = 20
const lowBitSpace = 1 << lowBits
const lowMask = lowBitSpace - 1

// ProgressReporter receives periodic counts during a long-running sweep
// (BruteForce or PillarSeedSolver). *diag.Progress satisfies this
// interface; this package depends only on the method, not on diag.
type ProgressReporter interface {
	Report(count, total int64)
}

// shipwreckResidue reports whether candidate low bits L are consistent
// with one shipwreck constraint's placement, using only the low 20 bits of
// both LCG steps the placement check performs. It is a necessary, not
// sufficient, condition: passing seeds may still fail full verification,
// but every seed that truly places the shipwreck keeps its low 20 bits in
// the filter's output.
func shipwreckResidue(l uint32, c *structures.Constraint) bool {
	regionX, regionZ := structures.RegionOf(c.ChunkX, c.ChunkZ, structures.ShipwreckSpacing)
	state1Low, state2Low := twoStepLow20(l, regionX, regionZ, structures.ShipwreckSalt)

	draw1Low3 := (state1Low >> 17) & 0x7
	if int32(draw1Low3&0x3) != rng.FloorMod(c.ChunkX, 4) {
		return false
	}
	draw2Low3 := (state2Low >> 17) & 0x7
	return int32(draw2Low3&0x3) == rng.FloorMod(c.ChunkZ, 4)
}

// twoStepLow20 computes the low 20 bits of the LCG state after one and two
// steps from a region seed, given only the low 20 bits (l) of the
// structure seed. This is exact: because the LCG's multiply-add and the
// region mix's XOR and addition are all modular operations, the low k bits
// of their output depend only on the low k bits of their input.
func twoStepLow20(l uint32, regionX, regionZ int32, salt int64) (state1Low, state2Low uint32) {
	mixConst := int64(regionX)*rng.MultA + int64(regionZ)*rng.MultB + salt
	sum20 := uint32((mixConst + int64(l)) & lowMask)
	init20 := sum20 ^ uint32(rng.Xor&lowMask)
	s1 := (uint64(init20)*rng.Mult + rng.Add) & lowMask
	s2 := (s1*rng.Mult + rng.Add) & lowMask
	return uint32(s1), uint32(s2)
}

// PreFilter enumerates every L in [0, 2^20) and keeps those consistent with
// every shipwreck constraint in constraints. If constraints contains no
// shipwreck, every L in [0, 2^20) is returned.
func PreFilter(constraints []structures.Constraint) []uint32 {
	var shipwrecks []*structures.Constraint
	for i := range constraints {
		if constraints[i].Kind == structures.KindShipwreck {
			shipwrecks = append(shipwrecks, &constraints[i])
		}
	}

	survivors := make([]uint32, 0, lowBitSpace)
	for l := uint32(0); l < lowBitSpace; l++ {
		ok := true
		for _, c := range shipwrecks {
			if !shipwreckResidue(l, c) {
				ok = false
				break
			}
		}
		if ok {
			survivors = append(survivors, l)
		}
	}
	return survivors
}
