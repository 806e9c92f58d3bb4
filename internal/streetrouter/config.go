package streetrouter

import (
	"os"
	"strconv"
	"time"
)

// getMaxExploredStates reads MAX_EXPLORED_STATES from the environment or
// returns a default, an upper bound on states popped before a search gives
// up rather than exhaust memory on an unreachable destination.
func getMaxExploredStates() int {
	if val := os.Getenv("MAX_EXPLORED_STATES"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return 200000
}

// getRoutingTimeout reads ROUTE_TIMEOUT from the environment or returns a
// default wall-clock budget for a single search.
func getRoutingTimeout() time.Duration {
	if val := os.Getenv("ROUTE_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return 10 * time.Second
}

// getDebugDumpPath reads ROUTE_DEBUG_CSV_PATH from the environment. An empty
// result means the per-pop CSV trace is disabled (the default).
func getDebugDumpPath() string {
	return os.Getenv("ROUTE_DEBUG_CSV_PATH")
}
