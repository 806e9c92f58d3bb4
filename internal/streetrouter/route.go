package streetrouter

import (
	"context"
	"fmt"
	"os"
)

// Route runs A* until one of: the queue empties; the queue head can no
// longer beat bestValueAtDestination (target pruning); a state popped at
// the configured toVertex is first seen; or the visitor signals early
// termination (spec.md §4.5, §4.6).
func (r *Router) Route(ctx context.Context) error {
	if r.queue.Len() == 0 {
		return ErrNoOrigin
	}

	ctx, cancel := context.WithTimeout(ctx, getRoutingTimeout())
	defer cancel()

	maxStates := getMaxExploredStates()

	var dump *os.File
	if path := getDebugDumpPath(); path != "" {
		f, err := os.Create(path)
		if err == nil {
			fmt.Fprintln(f, "lat,lon,weight")
			dump = f
			defer dump.Close()
		}
	}

	explored := 0
	for r.queue.Len() > 0 {
		if explored%1000 == 0 {
			select {
			case <-ctx.Done():
				return ErrRoutingTimeout
			default:
			}
		}
		if explored > maxStates {
			return ErrTooManyStatesExplored
		}

		popped := r.queue.pop()
		explored++

		if !r.bestStates.Contains(popped) {
			continue // zombie: dominated by a later insertion on the same edge
		}

		if dump != nil {
			p := r.graph.Vertices.Point(popped.Vertex)
			fmt.Fprintf(dump, "%f,%f,%f\n", p.Lat.ToFloat(), p.Lon.ToFloat(), popped.RoutingVariable(r.variable))
		}

		if r.atDestinationEndpoint(popped.Vertex) {
			r.considerDestination(popped)
		}
		if r.haveDestinationValue && popped.PriorityKey(r.variable) > r.bestValueAtDestination {
			return nil
		}

		if r.toVertex >= 0 && popped.Vertex == r.toVertex {
			return nil
		}

		if r.visitor != nil {
			r.visitor.VisitVertex(popped)
			if r.visitor.ShouldBreakSearch() {
				return nil
			}
		}

		for _, rawEdge := range r.graph.Edges.Adjacency(popped.Vertex, r.reverse) {
			edge := rawEdge
			if r.reverse {
				edge = rawEdge.Flip()
			}
			next, ok := r.traverse(popped, edge)
			if !ok {
				continue
			}
			r.enqueue(next)
		}
	}

	return nil
}
