package structures

import "seedforge.dev/internal/rng"

// RegionOf returns the SPACING-by-SPACING region a chunk falls in.
func RegionOf(chunkX, chunkZ, spacing int32) (regionX, regionZ int32) {
	return rng.FloorDiv(chunkX, spacing), rng.FloorDiv(chunkZ, spacing)
}

// CheckPlacement replays a structure-start region check: it returns true
// iff a structure of the given kind, seeded by seed, is placed at exactly
// (chunkX, chunkZ). The x-offset draw always precedes the z-offset draw.
func CheckPlacement(seed int64, chunkX, chunkZ, spacing, separation int32, salt int64) bool {
	regionX, regionZ := RegionOf(chunkX, chunkZ, spacing)
	r := &rng.Rand{}
	r.SetRegionSeed(seed, regionX, regionZ, salt)
	offset := spacing - separation

	vx := r.NextInt(offset)
	if regionX*spacing+vx != chunkX {
		return false
	}
	vz := r.NextInt(offset)
	return regionZ*spacing+vz == chunkZ
}
