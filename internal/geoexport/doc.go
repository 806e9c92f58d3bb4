// Package geoexport renders a reconstructed search result — a single path
// or a reached-vertex sweep — as GeoJSON, for the optional debug dump named
// in spec.md §6 ("Outputs"). It builds features with paulmach/go.geojson
// rather than hand-assembling the GeoJSON object tree.
package geoexport
