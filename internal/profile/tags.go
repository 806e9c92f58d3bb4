package profile

import (
	"strings"

	"github.com/passbi/streetrouter/internal/graphmodel"
)

// LabelEdge derives edge flags and permissions from a set of way tags,
// implementing the United States profile defaults from spec.md §6: cycleways
// and bridleways additionally permit pedestrians and bicycles, and pedestrian
// ways additionally permit bicycles. Unrecognized tags contribute nothing —
// callers compose LabelEdge's result with whatever base permission the
// source way type already carries.
func LabelEdge(tags map[string]string) (graphmodel.EdgeFlags, graphmodel.Permission) {
	var flags graphmodel.EdgeFlags
	var perm graphmodel.Permission

	highway := strings.ToLower(tags["highway"])
	switch highway {
	case "cycleway":
		flags |= graphmodel.EdgeBikePath
		perm |= graphmodel.PermitBicycle | graphmodel.PermitWalk
	case "bridleway":
		perm |= graphmodel.PermitBicycle | graphmodel.PermitWalk
	case "footway", "pedestrian", "path":
		flags |= graphmodel.EdgeSidewalk
		perm |= graphmodel.PermitWalk | graphmodel.PermitBicycle
	case "steps":
		flags |= graphmodel.EdgeStairs
		perm |= graphmodel.PermitWalk
	}

	if strings.EqualFold(tags["crossing"], "yes") || tags["crossing"] != "" {
		flags |= graphmodel.EdgeCrossing
	}
	if strings.EqualFold(tags["junction"], "roundabout") {
		flags |= graphmodel.EdgeRoundabout
	}
	if strings.EqualFold(tags["public_transport"], "platform") || strings.EqualFold(tags["railway"], "platform") {
		flags |= graphmodel.EdgePlatform
	}
	if strings.EqualFold(tags["sidewalk"], "yes") || strings.EqualFold(tags["sidewalk"], "both") {
		flags |= graphmodel.EdgeSidewalk
	}

	return flags, perm
}
