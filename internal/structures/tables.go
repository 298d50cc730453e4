package structures

// OceanShipwreckTypes is indexed by next_int(20) when a shipwreck is not
// beached.
var OceanShipwreckTypes = [20]string{
	"with_mast",
	"upright_full",
	"upright_fronthalf",
	"upright_backhalf",
	"sideways_full",
	"sideways_fronthalf",
	"sideways_backhalf",
	"rightsideup_full",
	"rightsideup_fronthalf",
	"rightsideup_backhalf",
	"with_mast_degraded",
	"upright_full_degraded",
	"upright_fronthalf_degraded",
	"upright_backhalf_degraded",
	"sideways_full_degraded",
	"sideways_fronthalf_degraded",
	"sideways_backhalf_degraded",
	"rightsideup_full_degraded",
	"rightsideup_fronthalf_degraded",
	"rightsideup_backhalf_degraded",
}

// BeachedShipwreckTypes is indexed by next_int(11) when a shipwreck is
// beached.
var BeachedShipwreckTypes = [11]string{
	"with_mast",
	"upright_full",
	"upright_fronthalf",
	"upright_backhalf",
	"sideways_full",
	"sideways_backhalf",
	"rightsideup_full",
	"rightsideup_fronthalf",
	"rightsideup_full_degraded",
	"rightsideup_fronthalf_degraded",
	"rightsideup_backhalf_degraded",
}

// RegularPortalTypes is indexed by next_int(10) for a non-giant portal.
var RegularPortalTypes = [10]string{
	"portal_1", "portal_2", "portal_3", "portal_4", "portal_5",
	"portal_6", "portal_7", "portal_8", "portal_9", "portal_10",
}

// GiantPortalTypes is indexed by next_int(3) for a giant portal.
var GiantPortalTypes = [3]string{
	"giant_portal_1", "giant_portal_2", "giant_portal_3",
}

// villagePiece is one interval of a village's t-draw: t < Until selects
// Piece with the given Abandoned flag.
type villagePiece struct {
	Until     int32
	Piece     string
	Abandoned bool
}

// villageTables maps each village type to its draw bound B and its ordered
// piece/abandoned intervals, reproducing the source game's start-pool odds.
var villageTables = map[VillageType]struct {
	Bound  int32
	Pieces []villagePiece
}{
	VillagePlains: {204, []villagePiece{
		{50, "plains_fountain_01", false},
		{100, "plains_meeting_point_1", false},
		{150, "plains_meeting_point_2", false},
		{200, "plains_meeting_point_3", false},
		{201, "plains_fountain_01", true},
		{202, "plains_meeting_point_1", true},
		{203, "plains_meeting_point_2", true},
		{204, "plains_meeting_point_3", true},
	}},
	VillageDesert: {250, []villagePiece{
		{98, "desert_meeting_point_1", false},
		{196, "desert_meeting_point_2", false},
		{245, "desert_meeting_point_3", false},
		{247, "desert_meeting_point_1", true},
		{249, "desert_meeting_point_2", true},
		{250, "desert_meeting_point_3", true},
	}},
	VillageSavanna: {459, []villagePiece{
		{100, "savanna_meeting_point_1", false},
		{150, "savanna_meeting_point_2", false},
		{300, "savanna_meeting_point_3", false},
		{450, "savanna_meeting_point_4", false},
		{452, "savanna_meeting_point_1", true},
		{453, "savanna_meeting_point_2", true},
		{456, "savanna_meeting_point_3", true},
		{459, "savanna_meeting_point_4", true},
	}},
	VillageTaiga: {100, []villagePiece{
		{49, "taiga_meeting_point_1", false},
		{98, "taiga_meeting_point_2", false},
		{99, "taiga_meeting_point_1", true},
		{100, "taiga_meeting_point_2", true},
	}},
	VillageSnowy: {306, []villagePiece{
		{100, "snowy_meeting_point_1", false},
		{150, "snowy_meeting_point_2", false},
		{300, "snowy_meeting_point_3", false},
		{302, "snowy_meeting_point_1", true},
		{303, "snowy_meeting_point_2", true},
		{306, "snowy_meeting_point_3", true},
	}},
}

// villagePieceFor resolves a t-draw into the (piece, abandoned) pair the
// game would have selected.
func villagePieceFor(vt VillageType, t int32) (piece string, abandoned bool, ok bool) {
	table, known := villageTables[vt]
	if !known {
		return "", false, false
	}
	for _, p := range table.Pieces {
		if t < p.Until {
			return p.Piece, p.Abandoned, true
		}
	}
	return "", false, false
}

func isGiantPortalType(name string) bool {
	for _, g := range GiantPortalTypes {
		if g == name {
			return true
		}
	}
	return false
}
