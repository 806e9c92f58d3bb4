package profile

import "github.com/passbi/streetrouter/internal/graphmodel"

// Default speeds in meters per second, used whenever an edge carries no
// direction-specific speed override. The car default matches spec.md §6.
const (
	DefaultWalkSpeedMPS    = 1.4
	DefaultBicycleSpeedMPS = 4.2
	DefaultCarSpeedMPS     = 36.11
)

// DefaultWalkReluctance scales walk-mode cost under the WEIGHT dominance
// variable, reflecting that travelers generally avoid walking relative to
// faster modes at equal duration.
const DefaultWalkReluctance = 2.0

// DefaultSpeedMPS returns the baseline travel speed for mode with no edge or
// request override applied.
func DefaultSpeedMPS(mode graphmodel.Mode) float64 {
	switch mode {
	case graphmodel.ModeWalk:
		return DefaultWalkSpeedMPS
	case graphmodel.ModeBicycle:
		return DefaultBicycleSpeedMPS
	case graphmodel.ModeCar:
		return DefaultCarSpeedMPS
	default:
		return DefaultWalkSpeedMPS
	}
}

// ResolveSpeedMPS picks the effective travel speed for traversing an edge
// under mode: an edge-carried speed (e.g. a posted limit) wins when present,
// else a request override for this mode, else the mode default.
func ResolveSpeedMPS(mode graphmodel.Mode, edgeBaseSpeedMPS float64, req *Request) float64 {
	if edgeBaseSpeedMPS > 0 {
		return edgeBaseSpeedMPS
	}
	if req != nil {
		if override := req.speedOverride(mode); override != nil {
			return *override
		}
	}
	return DefaultSpeedMPS(mode)
}
