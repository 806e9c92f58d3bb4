package graphmodel

// Mode is a street travel mode. It lives in graphmodel, not profile, because
// EdgeStore permissions are indexed by mode and graphmodel must not import
// profile (profile labels edges with graphmodel.EdgeFlags, so the dependency
// runs the other way).
type Mode int

const (
	ModeWalk Mode = iota
	ModeBicycle
	ModeCar
)

// Permission returns the single-mode Permission bit corresponding to m.
func (m Mode) Permission() Permission {
	switch m {
	case ModeWalk:
		return PermitWalk
	case ModeBicycle:
		return PermitBicycle
	case ModeCar:
		return PermitCar
	default:
		return 0
	}
}

// String implements fmt.Stringer for diagnostics.
func (m Mode) String() string {
	switch m {
	case ModeWalk:
		return "WALK"
	case ModeBicycle:
		return "BICYCLE"
	case ModeCar:
		return "CAR"
	default:
		return "UNKNOWN"
	}
}
