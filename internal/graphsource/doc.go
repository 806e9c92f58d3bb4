// Package graphsource loads a pre-built street graph out of Postgres into
// an in-memory graphmodel.Graph.
//
// This package does not build a graph from raw map data — that importer is
// out of scope (spec.md §1 Non-goals) — it assumes a street_vertex /
// street_edge / turn_restriction schema has already been populated upstream
// and reads it into the columnar stores graphmodel expects.
package graphsource
