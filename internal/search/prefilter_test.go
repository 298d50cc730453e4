package search

import (
	"testing"

	"seedforge.dev/internal/structures"
)

func TestPreFilterNoShipwreckReturnsEverything(t *testing.T) {
	constraints := []structures.Constraint{
		{Kind: structures.KindVillage, ChunkX: 1, ChunkZ: 1},
	}
	got := PreFilter(constraints)
	if len(got) != lowBitSpace {
		t.Fatalf("expected all %d candidates with no shipwreck constraint, got %d", lowBitSpace, len(got))
	}
}

func TestPreFilterSoundness(t *testing.T) {
	// Known-good fixture: a seed that fully satisfies the ocean shipwreck
	// scenario. Its low 20 bits must appear in the pre-filter output.
	seed := int64(163852095324161)
	c := structures.Constraint{
		Kind: structures.KindShipwreck, ChunkX: -54, ChunkZ: -14,
		Rotation: structures.RotationCounterclockwise90, ShipwreckType: "sideways_fronthalf",
	}
	if !structures.Verify(seed, &c) {
		t.Fatalf("fixture seed does not satisfy its own constraint")
	}
	l := uint32(seed) & lowMask
	survivors := PreFilter([]structures.Constraint{c})
	found := false
	for _, s := range survivors {
		if s == l {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("pre-filter dropped the low 20 bits (%d) of a seed that satisfies placement", l)
	}
}

func TestPreFilterNarrowsSpace(t *testing.T) {
	c := structures.Constraint{
		Kind: structures.KindShipwreck, ChunkX: -54, ChunkZ: -14,
		Rotation: structures.RotationCounterclockwise90, ShipwreckType: "sideways_fronthalf",
	}
	survivors := PreFilter([]structures.Constraint{c})
	if len(survivors) == 0 || len(survivors) >= lowBitSpace {
		t.Fatalf("expected a proper, non-empty subset of the low-20 space, got %d of %d", len(survivors), lowBitSpace)
	}
}
