package legorchestrator

import "errors"

// errNoSharedStation is returned when no bike-share vertex was reached by
// both the outbound and inbound fan-out searches.
var errNoSharedStation = errors.New("legorchestrator: no bike-share station reachable from both ends")
