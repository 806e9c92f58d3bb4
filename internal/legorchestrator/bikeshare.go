package legorchestrator

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/passbi/streetrouter/internal/geo"
	"github.com/passbi/streetrouter/internal/graphmodel"
	"github.com/passbi/streetrouter/internal/streetrouter"
	"github.com/passbi/streetrouter/internal/turns"
	"github.com/passbi/streetrouter/internal/visitor"
)

// BikeShareTripConfig parameterizes a walk-bikeshare-walk itinerary search.
type BikeShareTripConfig struct {
	Origin      graphmodel.Split
	Destination graphmodel.Split
	Variable    geo.Variable

	// SwitchCostWeight is the fixed penalty added to the combined cost at the
	// chosen bike-share station. SwitchTimeSeconds is not read by
	// PlanBikeShareTrip and adds nothing to any cost.
	SwitchTimeSeconds float64
	SwitchCostWeight  float64

	MinWalkSeconds float64
	MaxStations    int
	Turns          *turns.Table
}

// Itinerary is the best discovered station choice and its total cost under
// Config.Variable, split into outbound (walk to station) and inbound (walk
// from station) legs.
type Itinerary struct {
	Station      graphmodel.VertexIndex
	OutboundCost float64
	InboundCost  float64
	SwitchCost   float64
	TotalCost    float64
}

// PlanBikeShareTrip runs the outbound (walk from origin) and inbound (walk,
// reversed, from destination) bike-share station searches concurrently,
// then picks the station minimizing combined cost. Both searches use
// ModeWalk and a VertexFlagVisitor over VertexBikeShare, mirroring
// spec.md §4.8's reachability-query pattern; only the fan-out across the two
// independent legs is new here.
func PlanBikeShareTrip(ctx context.Context, graph *graphmodel.Graph, cfg BikeShareTripConfig) (*Itinerary, error) {
	var outbound, inbound map[graphmodel.VertexIndex]float64

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		r := streetrouter.New(graph, graphmodel.ModeWalk, cfg.Variable)
		r.SetTurnRestrictions(cfg.Turns)
		v := visitor.NewVertexFlagVisitor(graph, graphmodel.VertexBikeShare, cfg.Variable, cfg.MinWalkSeconds, cfg.MaxStations)
		r.SetVisitor(v)
		if err := r.SetOriginSplit(cfg.Origin); err != nil {
			return fmt.Errorf("outbound leg: %w", err)
		}
		if err := r.Route(ctx); err != nil {
			return fmt.Errorf("outbound leg: %w", err)
		}
		outbound = v.Results()
		return nil
	})

	eg.Go(func() error {
		r := streetrouter.New(graph, graphmodel.ModeWalk, cfg.Variable)
		r.SetTurnRestrictions(cfg.Turns)
		r.SetReverse(true)
		v := visitor.NewVertexFlagVisitor(graph, graphmodel.VertexBikeShare, cfg.Variable, cfg.MinWalkSeconds, cfg.MaxStations)
		r.SetVisitor(v)
		if err := r.SetOriginSplit(cfg.Destination); err != nil {
			return fmt.Errorf("inbound leg: %w", err)
		}
		if err := r.Route(ctx); err != nil {
			return fmt.Errorf("inbound leg: %w", err)
		}
		inbound = v.Results()
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return bestStation(outbound, inbound, cfg.SwitchCostWeight)
}

func bestStation(outbound, inbound map[graphmodel.VertexIndex]float64, switchCost float64) (*Itinerary, error) {
	var best *Itinerary

	for station, outCost := range outbound {
		inCost, ok := inbound[station]
		if !ok {
			continue
		}
		total := outCost + switchCost + inCost
		if best == nil || total < best.TotalCost {
			best = &Itinerary{
				Station:      station,
				OutboundCost: outCost,
				InboundCost:  inCost,
				SwitchCost:   switchCost,
				TotalCost:    total,
			}
		}
	}

	if best == nil {
		return nil, errNoSharedStation
	}
	return best, nil
}
