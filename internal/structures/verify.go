package structures

// Verify replays placement and property selection for c's kind and reports
// whether seed is consistent with every observed attribute. It is a pure,
// total function: it never panics and always terminates.
func Verify(seed int64, c *Constraint) bool {
	switch c.Kind {
	case KindShipwreck:
		return CheckShipwreck(seed, c)
	case KindRuinedPortal:
		return CheckPortal(seed, c)
	case KindVillage:
		return CheckVillage(seed, c)
	default:
		return false
	}
}

// VerifyAll reports whether seed satisfies every constraint.
func VerifyAll(seed int64, constraints []Constraint) bool {
	for i := range constraints {
		if !Verify(seed, &constraints[i]) {
			return false
		}
	}
	return true
}
