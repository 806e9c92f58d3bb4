package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/passbi/streetrouter/internal/geo"
	"github.com/passbi/streetrouter/internal/geoexport"
	"github.com/passbi/streetrouter/internal/graphmodel"
	"github.com/passbi/streetrouter/internal/graphsource"
	"github.com/passbi/streetrouter/internal/streetrouter"
)

func main() {
	mode := flag.String("mode", "WALK", "travel mode: WALK, BICYCLE or CAR")
	variable := flag.String("variable", "DURATION", "dominance variable: DURATION, WEIGHT or DISTANCE")
	fromLat := flag.Float64("from-lat", 0, "origin latitude")
	fromLon := flag.Float64("from-lon", 0, "origin longitude")
	toLat := flag.Float64("to-lat", 0.005, "destination latitude")
	toLon := flag.Float64("to-lon", 0.005, "destination longitude")
	radiusMeters := flag.Float64("radius", 50, "snap radius in meters")
	gridSize := flag.Int("demo-grid-size", 8, "side length of the synthetic demo grid, used when -db is not set")
	useDB := flag.Bool("db", false, "load the graph from Postgres via internal/graphsource instead of the demo grid")
	flag.Parse()

	log.Println("routebench - streetrouter search harness")

	m, err := parseMode(*mode)
	if err != nil {
		log.Fatalf("invalid -mode: %v", err)
	}
	v, err := parseVariable(*variable)
	if err != nil {
		log.Fatalf("invalid -variable: %v", err)
	}

	var graph *graphmodel.Graph
	ctx := context.Background()

	if *useDB {
		pool, err := graphsource.GetPool()
		if err != nil {
			log.Fatalf("connecting to graph database: %v", err)
		}
		defer graphsource.Close()

		if err := graphsource.HealthCheck(ctx); err != nil {
			log.Fatalf("graph database health check: %v", err)
		}

		log.Println("loading graph from Postgres...")
		graph, _, err = graphsource.LoadFromPostgres(ctx, pool)
		if err != nil {
			log.Fatalf("loading graph: %v", err)
		}
	} else {
		log.Printf("building synthetic %dx%d demo grid", *gridSize, *gridSize)
		graph = buildDemoGraph(*gridSize)
	}

	log.Printf("graph ready: %d vertices, %d directed edges", graph.Vertices.Count(), graph.Edges.Count())

	r := streetrouter.New(graph, m, v)
	if err := r.SetOriginLatLon(*fromLat, *fromLon, *radiusMeters); err != nil {
		log.Fatalf("snapping origin: %v", err)
	}
	if err := r.SetDestinationLatLon(*toLat, *toLon, *radiusMeters); err != nil {
		log.Fatalf("snapping destination: %v", err)
	}

	start := time.Now()
	if err := r.Route(ctx); err != nil {
		log.Fatalf("search failed: %v", err)
	}
	elapsed := time.Since(start)

	destSplit, err := graphmodel.FindSplit(graph, geo.PointFromFloat(*toLat, *toLon), *radiusMeters, m)
	if err != nil {
		log.Fatalf("resplitting destination for result extraction: %v", err)
	}
	result := r.GetState(destSplit)
	if result == nil {
		log.Println("no path found")
		return
	}

	log.Printf("search took %v", elapsed)
	log.Printf("distance: %d mm, duration: %d s, weight: %d", result.DistanceMM, result.DurationSeconds, result.WeightValue)

	feature := geoexport.PathFeature(graph, result)
	if feature != nil {
		log.Printf("path has %d coordinates", len(feature.Geometry.LineString))
	}
}

func parseMode(s string) (graphmodel.Mode, error) {
	switch s {
	case "WALK":
		return graphmodel.ModeWalk, nil
	case "BICYCLE":
		return graphmodel.ModeBicycle, nil
	case "CAR":
		return graphmodel.ModeCar, nil
	default:
		return 0, fmt.Errorf("unknown mode %q", s)
	}
}

func parseVariable(s string) (geo.Variable, error) {
	switch s {
	case "DURATION":
		return geo.VariableDuration, nil
	case "WEIGHT":
		return geo.VariableWeight, nil
	case "DISTANCE":
		return geo.VariableDistance, nil
	default:
		return 0, fmt.Errorf("unknown variable %q", s)
	}
}
