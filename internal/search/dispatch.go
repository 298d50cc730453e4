package search

import "seedforge.dev/internal/structures"

// DefaultReversingAnchorLimit bounds how many constraints the reversing
// solver is considered for when the caller doesn't override it: above this
// count, brute-forcing the pre-filtered survivors is cheaper than running
// the full verifier chain once per reversing candidate for little
// additional narrowing.
const DefaultReversingAnchorLimit = 10

// Strategy names the search strategy chosen for a given constraint set.
type Strategy int

const (
	StrategyPillarSeed Strategy = iota
	StrategyReversing
	StrategyBruteForce
)

func (s Strategy) String() string {
	switch s {
	case StrategyPillarSeed:
		return "pillarseed"
	case StrategyReversing:
		return "reversing"
	case StrategyBruteForce:
		return "brute-force"
	default:
		return "unknown"
	}
}

// Choose inspects the constraint set and an optional pillar seed and
// reports which strategy the dispatcher should run, along with the index
// of the anchor constraint the reversing solver should use (first portal,
// else first shipwreck). The anchor index is meaningless unless the
// strategy is StrategyReversing. anchorLimit is the dispatcher's
// num_constraints ceiling for choosing the reversing solver over
// brute-force; anchorLimit <= 0 falls back to DefaultReversingAnchorLimit.
func Choose(constraints []structures.Constraint, hasPillarSeed bool, anchorLimit int) (strategy Strategy, anchorIndex int) {
	if hasPillarSeed {
		return StrategyPillarSeed, -1
	}
	if anchorLimit <= 0 {
		anchorLimit = DefaultReversingAnchorLimit
	}

	anchorIndex = -1
	firstShipwreck := -1
	hasAnchorKind := false
	for i := range constraints {
		switch constraints[i].Kind {
		case structures.KindRuinedPortal:
			if anchorIndex == -1 {
				anchorIndex = i
			}
			hasAnchorKind = true
		case structures.KindShipwreck:
			if firstShipwreck == -1 {
				firstShipwreck = i
			}
			hasAnchorKind = true
		}
	}
	if anchorIndex == -1 {
		anchorIndex = firstShipwreck
	}

	n := len(constraints)
	if hasAnchorKind && n >= 1 && n <= anchorLimit {
		return StrategyReversing, anchorIndex
	}
	return StrategyBruteForce, -1
}

// Run executes the chosen strategy end to end and returns every seed that
// satisfies every constraint, unsorted. If reporter is non-nil and
// progressEvery > 0, the brute-force and pillarseed strategies report
// their progress through it every progressEvery candidates.
func Run(constraints []structures.Constraint, pillarSeed uint32, hasPillarSeed bool, workers, anchorLimit int, progressEvery int64, reporter ProgressReporter) []int64 {
	strategy, anchorIndex := Choose(constraints, hasPillarSeed, anchorLimit)

	switch strategy {
	case StrategyPillarSeed:
		return PillarSeedSolver(pillarSeed, constraints, workers, progressEvery, reporter)

	case StrategyReversing:
		lows := PreFilter(constraints)
		anchor := &constraints[anchorIndex]
		var results []int64
		for _, l := range lows {
			for _, seed := range ReverseAnchor(anchor, l) {
				if structures.VerifyAll(seed, constraints) {
					results = append(results, seed)
				}
			}
		}
		return results

	default:
		lows := PreFilter(constraints)
		return BruteForce(lows, constraints, workers, progressEvery, reporter)
	}
}
