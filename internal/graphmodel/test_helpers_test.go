package graphmodel_test

import "github.com/passbi/streetrouter/internal/geo"

func geoPoint(lat, lon float64) geo.Point {
	return geo.PointFromFloat(lat, lon)
}
