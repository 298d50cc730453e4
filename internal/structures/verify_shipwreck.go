package structures

import "seedforge.dev/internal/rng"

// CheckShipwreck replays shipwreck placement and variant selection, and
// reports whether seed reproduces every attribute of c.
func CheckShipwreck(seed int64, c *Constraint) bool {
	if !CheckPlacement(seed, c.ChunkX, c.ChunkZ, ShipwreckSpacing, ShipwreckSeparation, ShipwreckSalt) {
		return false
	}
	r := &rng.Rand{}
	r.SetCarverSeed(seed, c.ChunkX, c.ChunkZ)

	rotation := Rotation(r.NextInt(4))
	if rotation != c.Rotation {
		return false
	}

	if c.IsBeached {
		idx := r.NextInt(11)
		if idx < 0 || int(idx) >= len(BeachedShipwreckTypes) {
			return false
		}
		return BeachedShipwreckTypes[idx] == c.ShipwreckType
	}
	idx := r.NextInt(20)
	if idx < 0 || int(idx) >= len(OceanShipwreckTypes) {
		return false
	}
	return OceanShipwreckTypes[idx] == c.ShipwreckType
}
