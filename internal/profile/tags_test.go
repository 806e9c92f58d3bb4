package profile

import (
	"testing"

	"github.com/passbi/streetrouter/internal/graphmodel"
	"github.com/stretchr/testify/assert"
)

func TestLabelEdge(t *testing.T) {
	tests := []struct {
		name      string
		tags      map[string]string
		wantFlags graphmodel.EdgeFlags
		wantPerm  graphmodel.Permission
	}{
		{
			name:      "cycleway permits walk and bicycle",
			tags:      map[string]string{"highway": "cycleway"},
			wantFlags: graphmodel.EdgeBikePath,
			wantPerm:  graphmodel.PermitBicycle | graphmodel.PermitWalk,
		},
		{
			name:      "bridleway permits walk and bicycle",
			tags:      map[string]string{"highway": "bridleway"},
			wantFlags: 0,
			wantPerm:  graphmodel.PermitBicycle | graphmodel.PermitWalk,
		},
		{
			name:      "pedestrian way permits bicycle",
			tags:      map[string]string{"highway": "footway"},
			wantFlags: graphmodel.EdgeSidewalk,
			wantPerm:  graphmodel.PermitWalk | graphmodel.PermitBicycle,
		},
		{
			name:      "steps is walk-only and flagged stairs",
			tags:      map[string]string{"highway": "steps"},
			wantFlags: graphmodel.EdgeStairs,
			wantPerm:  graphmodel.PermitWalk,
		},
		{
			name:      "unrecognized highway contributes nothing",
			tags:      map[string]string{"highway": "motorway"},
			wantFlags: 0,
			wantPerm:  0,
		},
		{
			name:      "roundabout junction flagged independent of highway",
			tags:      map[string]string{"highway": "motorway", "junction": "roundabout"},
			wantFlags: graphmodel.EdgeRoundabout,
			wantPerm:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, perm := LabelEdge(tt.tags)
			assert.Equal(t, tt.wantFlags, flags)
			assert.Equal(t, tt.wantPerm, perm)
		})
	}
}
