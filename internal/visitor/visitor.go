package visitor

import "github.com/passbi/streetrouter/internal/searchstate"

// RoutingVisitor receives every state popped from the search frontier and
// decides when the search has done enough work.
type RoutingVisitor interface {
	VisitVertex(state *searchstate.State)
	ShouldBreakSearch() bool
}
