// Package routecache memoizes the two most repeated, re-derivable queries a
// StreetRouter client issues: snapping a lat/lon to an edge (graphmodel.Split)
// and a completed search's reached-stop/vertex result map. Entries are
// sha256-keyed and a SETNX-based lock prevents two callers from recomputing
// the same expensive search concurrently.
package routecache
