package structures

import "seedforge.dev/internal/rng"

// CheckPortal replays ruined-portal placement and property selection, and
// reports whether seed reproduces every attribute of c.
func CheckPortal(seed int64, c *Constraint) bool {
	if !CheckPlacement(seed, c.ChunkX, c.ChunkZ, PortalSpacing, PortalSeparation, PortalSalt) {
		return false
	}
	r := &rng.Rand{}
	r.SetCarverSeed(seed, c.ChunkX, c.ChunkZ)

	switch c.BiomeCategory {
	case BiomeDesert:
		// no pre-draw
	case BiomeJungle:
		_ = r.NextFloat()
	case BiomeMountains:
		if r.NextFloat() >= 0.5 {
			_ = r.NextFloat()
		}
	default:
		return false
	}

	var wantGiant bool
	var wantIdx int32 = -1
	if isGiantPortalType(c.PortalType) {
		wantGiant = true
		for i, n := range GiantPortalTypes {
			if n == c.PortalType {
				wantIdx = int32(i)
			}
		}
	} else {
		for i, n := range RegularPortalTypes {
			if n == c.PortalType {
				wantIdx = int32(i)
			}
		}
	}
	if wantIdx < 0 {
		return false
	}

	isGiant := r.NextFloat() < 0.05
	if isGiant != wantGiant {
		return false
	}
	if isGiant {
		if r.NextInt(3) != wantIdx {
			return false
		}
	} else {
		if r.NextInt(10) != wantIdx {
			return false
		}
	}

	rotation := Rotation(r.NextInt(4))
	if rotation != c.Rotation {
		return false
	}

	mirror := MirrorNone
	if r.NextFloat() >= 0.5 {
		mirror = MirrorFrontBack
	}
	return mirror == c.Mirror
}
