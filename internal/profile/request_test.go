package profile_test

import (
	"testing"

	"github.com/gotidy/ptr"
	"github.com/stretchr/testify/assert"

	"github.com/passbi/streetrouter/internal/profile"
)

func TestRequest_NilReceiverUsesDefaults(t *testing.T) {
	var req *profile.Request
	assert.Equal(t, profile.DefaultWalkReluctance, req.Reluctance())
	assert.False(t, req.IsReverse())
	assert.Equal(t, float64(0), req.MinTravelTime())
}

func TestRequest_OverridesWinOverDefaults(t *testing.T) {
	req := &profile.Request{
		WalkReluctance:       ptr.Float64(3.5),
		ReverseSearch:        ptr.Bool(true),
		MinTravelTimeSeconds: ptr.Float64(90.0),
	}

	assert.Equal(t, 3.5, req.Reluctance())
	assert.True(t, req.IsReverse())
	assert.Equal(t, 90.0, req.MinTravelTime())
}

func TestRequest_UnsetFieldsFallBackToDefaults(t *testing.T) {
	req := &profile.Request{ReverseSearch: ptr.Bool(false)}

	assert.Equal(t, profile.DefaultWalkReluctance, req.Reluctance())
	assert.False(t, req.IsReverse())
	assert.Equal(t, float64(0), req.MinTravelTime())
}
