package streetrouter

import "errors"

var (
	// ErrNoOrigin is returned by Route when no origin has been set.
	ErrNoOrigin = errors.New("streetrouter: no origin set")
	// ErrRoutingTimeout is returned when the configured context deadline or
	// ROUTE_TIMEOUT elapses before the search completes.
	ErrRoutingTimeout = errors.New("streetrouter: routing timeout exceeded")
	// ErrTooManyStatesExplored is returned when MAX_EXPLORED_STATES is hit
	// without a terminating condition being reached.
	ErrTooManyStatesExplored = errors.New("streetrouter: too many states explored")
)
