package graphsource

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/passbi/streetrouter/internal/geo"
	"github.com/passbi/streetrouter/internal/graphmodel"
	"github.com/passbi/streetrouter/internal/turns"
)

// Querier is satisfied by *pgxpool.Pool and pgx.Tx, so loading can run
// inside a caller-managed transaction or directly against the pool.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// LoadFromPostgres reads the street_vertex, street_edge and turn_restriction
// tables and assembles a graphmodel.Graph plus its associated turn
// restriction Table. It assumes a pre-built schema (spec.md §1 places
// construction from raw map data out of scope); row order determines the
// dense VertexIndex/EdgeIndex assignment, so the schema's bigint ids are
// translated through the id maps built here and then discarded.
func LoadFromPostgres(ctx context.Context, db Querier) (*graphmodel.Graph, *turns.Table, error) {
	vertices, vertexIDs, err := loadVertices(ctx, db)
	if err != nil {
		return nil, nil, fmt.Errorf("loading vertices: %w", err)
	}

	vertexIndex := make(map[int64]graphmodel.VertexIndex, len(vertexIDs))
	for i, id := range vertexIDs {
		vertexIndex[id] = graphmodel.VertexIndex(i)
	}

	edges, edgeIDs, err := loadEdges(ctx, db, vertices.Count(), vertexIndex)
	if err != nil {
		return nil, nil, fmt.Errorf("loading edges: %w", err)
	}

	edgeIndex := make(map[int64]graphmodel.EdgeIndex, len(edgeIDs))
	for id, fwd := range edgeIDs {
		edgeIndex[id] = fwd
	}

	table, err := loadRestrictions(ctx, db, edgeIndex)
	if err != nil {
		return nil, nil, fmt.Errorf("loading turn restrictions: %w", err)
	}

	return graphmodel.New(vertices, edges), table, nil
}

func loadVertices(ctx context.Context, db Querier) (*graphmodel.VertexStore, []int64, error) {
	rows, err := db.Query(ctx, `SELECT id, lat, lon, flags FROM street_vertex ORDER BY id`)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	vs := graphmodel.NewVertexStore(0)
	var ids []int64

	for rows.Next() {
		var id int64
		var lat, lon float64
		var flags int32
		if err := rows.Scan(&id, &lat, &lon, &flags); err != nil {
			return nil, nil, err
		}
		vs.AddVertex(geo.PointFromFloat(lat, lon), graphmodel.VertexFlags(flags))
		ids = append(ids, id)
	}

	return vs, ids, rows.Err()
}

// edgeRow mirrors one street_edge record: a shared geometry with two
// independently-flagged directions, matching EdgeStore.AddEdgePair.
type edgeRow struct {
	id             int64
	fromVertex     int64
	toVertex       int64
	lengthMM       int64
	fwdPermission  int16
	fwdBaseSpeed   float64
	fwdFlags       int32
	backPermission int16
	backBaseSpeed  float64
	backFlags      int32
}

func loadEdges(ctx context.Context, db Querier, numVertices int, vertexIndex map[int64]graphmodel.VertexIndex) (*graphmodel.EdgeStore, map[int64]graphmodel.EdgeIndex, error) {
	rows, err := db.Query(ctx, `
		SELECT id, from_vertex_id, to_vertex_id, length_mm,
		       fwd_permission, fwd_base_speed, fwd_flags,
		       back_permission, back_base_speed, back_flags
		FROM street_edge
		ORDER BY id
	`)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var records []edgeRow
	for rows.Next() {
		var r edgeRow
		if err := rows.Scan(&r.id, &r.fromVertex, &r.toVertex, &r.lengthMM,
			&r.fwdPermission, &r.fwdBaseSpeed, &r.fwdFlags,
			&r.backPermission, &r.backBaseSpeed, &r.backFlags); err != nil {
			return nil, nil, err
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	es := graphmodel.NewEdgeStore(numVertices, len(records))
	idToFwd := make(map[int64]graphmodel.EdgeIndex, len(records))

	for _, r := range records {
		from, ok := vertexIndex[r.fromVertex]
		if !ok {
			return nil, nil, fmt.Errorf("street_edge %d: unknown from_vertex_id %d", r.id, r.fromVertex)
		}
		to, ok := vertexIndex[r.toVertex]
		if !ok {
			return nil, nil, fmt.Errorf("street_edge %d: unknown to_vertex_id %d", r.id, r.toVertex)
		}

		fwd := graphmodel.DirectionSpec{
			Permission: graphmodel.Permission(r.fwdPermission),
			BaseSpeed:  r.fwdBaseSpeed,
			Flags:      graphmodel.EdgeFlags(r.fwdFlags),
		}
		back := graphmodel.DirectionSpec{
			Permission: graphmodel.Permission(r.backPermission),
			BaseSpeed:  r.backBaseSpeed,
			Flags:      graphmodel.EdgeFlags(r.backFlags),
		}

		fwdIdx := es.AddEdgePair(from, to, r.lengthMM, fwd, back)
		idToFwd[r.id] = fwdIdx
	}

	return es, idToFwd, nil
}

// resolveEdge translates a (db edge id, reverse) pair to the directed
// EdgeIndex a restriction sequence actually traverses.
func resolveEdge(edgeIndex map[int64]graphmodel.EdgeIndex, id int64, reverse bool) (graphmodel.EdgeIndex, error) {
	fwd, ok := edgeIndex[id]
	if !ok {
		return 0, fmt.Errorf("unknown street_edge id %d", id)
	}
	if reverse {
		return fwd.Flip(), nil
	}
	return fwd, nil
}

func loadRestrictions(ctx context.Context, db Querier, edgeIndex map[int64]graphmodel.EdgeIndex) (*turns.Table, error) {
	rows, err := db.Query(ctx, `
		SELECT from_edge_id, from_reverse, via_edge_ids, via_reverse, to_edge_id, to_reverse, polarity
		FROM turn_restriction
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restrictions []turns.Restriction
	for rows.Next() {
		var fromID, toID int64
		var fromReverse, toReverse bool
		var viaIDs []int64
		var viaReverse []bool
		var polarity int16

		if err := rows.Scan(&fromID, &fromReverse, &viaIDs, &viaReverse, &toID, &toReverse, &polarity); err != nil {
			return nil, err
		}

		from, err := resolveEdge(edgeIndex, fromID, fromReverse)
		if err != nil {
			return nil, err
		}
		to, err := resolveEdge(edgeIndex, toID, toReverse)
		if err != nil {
			return nil, err
		}

		via := make([]graphmodel.EdgeIndex, len(viaIDs))
		for i, id := range viaIDs {
			rev := i < len(viaReverse) && viaReverse[i]
			e, err := resolveEdge(edgeIndex, id, rev)
			if err != nil {
				return nil, err
			}
			via[i] = e
		}

		restrictions = append(restrictions, turns.Restriction{
			From:     from,
			Via:      via,
			To:       to,
			Polarity: turns.Polarity(polarity),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return turns.NewTable(restrictions), nil
}
