// Package structures models the observed Minecraft structures a seed search
// is constrained against, and replays the game's placement and
// property-selection algorithms to verify a candidate seed against them.
package structures

// Rotation mirrors Minecraft's four-way structure rotation.
type Rotation int

const (
	RotationNone Rotation = iota
	RotationClockwise90
	RotationClockwise180
	RotationCounterclockwise90
)

func (r Rotation) String() string {
	switch r {
	case RotationNone:
		return "NONE"
	case RotationClockwise90:
		return "CLOCKWISE_90"
	case RotationClockwise180:
		return "CLOCKWISE_180"
	case RotationCounterclockwise90:
		return "COUNTERCLOCKWISE_90"
	default:
		return "UNKNOWN"
	}
}

// Mirror mirrors a ruined portal's front/back mirroring flag.
type Mirror int

const (
	MirrorNone Mirror = iota
	MirrorFrontBack
)

// BiomeCategory groups the biome families that affect ruined portal
// property selection.
type BiomeCategory int

const (
	BiomeMountains BiomeCategory = 1
	BiomeDesert    BiomeCategory = 2
	BiomeJungle    BiomeCategory = 3
)

// VillageType selects which piece pool and survival odds a village draws
// from.
type VillageType int

const (
	VillagePlains VillageType = 1
	VillageSnowy  VillageType = 2
	VillageTaiga  VillageType = 3
	VillageSavanna VillageType = 4
	VillageDesert  VillageType = 5
)

// Kind tags which structure-specific payload a Constraint carries.
type Kind int

const (
	KindShipwreck Kind = iota
	KindRuinedPortal
	KindVillage
)

// Constraint describes one observed structure: its chunk position plus a
// kind-dependent set of attributes that narrow which seeds are consistent
// with it.
type Constraint struct {
	Kind   Kind
	ChunkX int32
	ChunkZ int32
	Rotation Rotation

	// Shipwreck
	ShipwreckType string
	IsBeached     bool

	// RuinedPortal
	PortalType    string
	Mirror        Mirror
	BiomeCategory BiomeCategory

	// Village
	StartPiece  string
	VillageType VillageType
	IsAbandoned bool
}

// Placement constants, one row per structure kind.
const (
	ShipwreckSpacing    int32 = 24
	ShipwreckSeparation int32 = 4
	ShipwreckSalt       int64 = 165745295

	PortalSpacing    int32 = 40
	PortalSeparation int32 = 15
	PortalSalt       int64 = 34222645

	VillageSpacing    int32 = 34
	VillageSeparation int32 = 8
	VillageSalt       int64 = 10387312
)

// Placement returns the spacing, separation, and salt placement constants
// for c's kind, or zeros for an unknown kind.
func (c *Constraint) Placement() (spacing, separation int32, salt int64) {
	switch c.Kind {
	case KindShipwreck:
		return ShipwreckSpacing, ShipwreckSeparation, ShipwreckSalt
	case KindRuinedPortal:
		return PortalSpacing, PortalSeparation, PortalSalt
	case KindVillage:
		return VillageSpacing, VillageSeparation, VillageSalt
	default:
		return 0, 0, 0
	}
}
