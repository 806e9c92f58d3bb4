package profile

import "github.com/passbi/streetrouter/internal/graphmodel"

// Request carries per-search overrides of the profile defaults. Every field
// is a pointer so a caller can distinguish "use the default" from "use this
// exact value", following the same optional-field convention the rest of
// the pack uses via github.com/gotidy/ptr (ptr.Of / ptr.Int etc. at the call
// site that builds a Request).
type Request struct {
	WalkSpeedMPS    *float64
	BicycleSpeedMPS *float64
	CarSpeedMPS     *float64

	WalkReluctance *float64

	// ReverseSearch flips the search direction: edges are traversed against
	// their stored orientation and turn costs apply to the reverse move.
	ReverseSearch *bool

	// MinTravelTimeSeconds floors the duration a stop/vertex visitor accepts
	// as "reached", filtering out results so close to the origin they are not
	// a meaningful leg (spec.md §5 visitor minTravelTimeSeconds).
	MinTravelTimeSeconds *float64
}

func (r *Request) speedOverride(mode graphmodel.Mode) *float64 {
	if r == nil {
		return nil
	}
	switch mode {
	case graphmodel.ModeWalk:
		return r.WalkSpeedMPS
	case graphmodel.ModeBicycle:
		return r.BicycleSpeedMPS
	case graphmodel.ModeCar:
		return r.CarSpeedMPS
	default:
		return nil
	}
}

// Reluctance returns the walk-reluctance factor to apply under the WEIGHT
// dominance variable: the request override if set, else the package default.
func (r *Request) Reluctance() float64 {
	if r != nil && r.WalkReluctance != nil {
		return *r.WalkReluctance
	}
	return DefaultWalkReluctance
}

// IsReverse reports whether this request asks for a reverse (destination to
// origin) search.
func (r *Request) IsReverse() bool {
	return r != nil && r.ReverseSearch != nil && *r.ReverseSearch
}

// MinTravelTime returns the floor duration, in seconds, a reached stop or
// flagged vertex must clear to be reported, defaulting to zero (report
// everything reached).
func (r *Request) MinTravelTime() float64 {
	if r != nil && r.MinTravelTimeSeconds != nil {
		return *r.MinTravelTimeSeconds
	}
	return 0
}
