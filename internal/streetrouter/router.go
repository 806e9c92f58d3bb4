package streetrouter

import (
	"log"

	"github.com/passbi/streetrouter/internal/geo"
	"github.com/passbi/streetrouter/internal/graphmodel"
	"github.com/passbi/streetrouter/internal/profile"
	"github.com/passbi/streetrouter/internal/searchstate"
	"github.com/passbi/streetrouter/internal/turns"
	"github.com/passbi/streetrouter/internal/visitor"
)

// Router is a single-threaded, ephemeral A* search over a shared read-only
// Graph. One search per instance is the intended usage (spec.md §5).
type Router struct {
	graph *graphmodel.Graph
	mode  graphmodel.Mode

	variable geo.Variable
	turnCalc *turns.Calculator
	request  *profile.Request
	reverse  bool

	distanceLimitMM  float64
	timeLimitSeconds float64

	toVertex graphmodel.VertexIndex // < 0 means no vertex stop condition
	dest     *graphmodel.Split      // nil means no destination set
	visitor  visitor.RoutingVisitor

	bestStates             *searchstate.BestStatesIndex
	queue                  *priorityQueue
	bestValueAtDestination float64
	haveDestinationValue   bool

	// PreviousRouter is an optional back-link hint for higher layers
	// reconstructing multi-leg paths. It plays no role in the search itself
	// (spec.md §9).
	PreviousRouter *Router
}

// New constructs a Router over graph for mode, dominated/ordered by variable.
// Turn restrictions default to none; install a table via SetTurnRestrictions.
func New(graph *graphmodel.Graph, mode graphmodel.Mode, variable geo.Variable) *Router {
	return &Router{
		graph:    graph,
		mode:     mode,
		variable: variable,
		turnCalc: turns.NewCalculator(graph, nil),
		toVertex: -1,
		queue:    newPriorityQueue(variable),
	}
}

// SetTurnRestrictions installs the turn-restriction table active for this
// search. Passing nil disables turn-restriction checking (pure turn costs).
func (r *Router) SetTurnRestrictions(table *turns.Table) {
	r.turnCalc = turns.NewCalculator(r.graph, table)
}

// SetRequest installs per-mode speed overrides, walk reluctance, and the
// reverse-search flag used by this search. The request's
// MinTravelTimeSeconds is not read by the router; visitors take their own
// floor when constructed.
func (r *Router) SetRequest(req *profile.Request) {
	r.request = req
	r.reverse = req.IsReverse()
}

// SetDistanceLimitMeters prunes states whose cumulative distance exceeds
// limit. A limit of 0 disables the check. Per spec.md §4.6, a warning is
// logged when the active variable is not VariableDistance, since the limit
// and the dominance/priority ordering are then measuring different things.
func (r *Router) SetDistanceLimitMeters(limit float64) {
	r.distanceLimitMM = limit * 1000
	if limit > 0 && r.variable != geo.VariableDistance {
		log.Printf("streetrouter: distance limit set while dominance variable is %s, not distance", r.variable)
	}
}

// SetTimeLimitSeconds prunes states whose cumulative duration exceeds limit.
// A limit of 0 disables the check. Warns when the active variable is not
// VariableDuration, mirroring SetDistanceLimitMeters.
func (r *Router) SetTimeLimitSeconds(limit float64) {
	r.timeLimitSeconds = limit
	if limit > 0 && r.variable != geo.VariableDuration {
		log.Printf("streetrouter: time limit set while dominance variable is %s, not duration", r.variable)
	}
}

// SetReverse toggles reverse search directly, for callers that seed a
// reverse search from a destination without going through SetRequest (e.g.
// internal/legorchestrator's arrival-side fan-out).
func (r *Router) SetReverse(reverse bool) {
	r.reverse = reverse
}

// SetVisitor installs the capability visitor consulted at every popped state.
func (r *Router) SetVisitor(v visitor.RoutingVisitor) {
	r.visitor = v
}

// SetToVertex enables the vertex-indexed stop condition: the search
// terminates as soon as a state popped at toVertex is first seen.
func (r *Router) SetToVertex(v graphmodel.VertexIndex) {
	r.toVertex = v
}

func (r *Router) ensureBestStates() {
	if r.bestStates == nil {
		r.bestStates = searchstate.NewBestStatesIndex(r.variable)
	}
}

func (r *Router) maxSpeedMPS() float64 {
	return profile.ResolveSpeedMPS(r.mode, 0, r.request)
}

func (r *Router) isWalk() bool { return r.mode == graphmodel.ModeWalk }

func (r *Router) reluctance() float64 { return r.request.Reluctance() }
