package structures

import "seedforge.dev/internal/rng"

// CheckVillage replays village placement and start-piece selection, and
// reports whether seed reproduces every attribute of c.
//
// Village rotation is drawn with next(2), not next_int(4) as shipwrecks and
// portals use; see the rotation note in DESIGN.md.
func CheckVillage(seed int64, c *Constraint) bool {
	if !CheckPlacement(seed, c.ChunkX, c.ChunkZ, VillageSpacing, VillageSeparation, VillageSalt) {
		return false
	}
	r := &rng.Rand{}
	r.SetCarverSeed(seed, c.ChunkX, c.ChunkZ)

	rotation := Rotation(r.Next(2))
	if rotation != c.Rotation {
		return false
	}

	table, known := villageTables[c.VillageType]
	if !known {
		return false
	}
	t := r.NextInt(table.Bound)
	piece, abandoned, ok := villagePieceFor(c.VillageType, t)
	if !ok {
		return false
	}
	return piece == c.StartPiece && abandoned == c.IsAbandoned
}
