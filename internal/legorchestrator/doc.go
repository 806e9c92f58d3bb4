// Package legorchestrator composes a bike-share itinerary out of independent
// StreetRouter searches: a walk search from the origin and a reversed walk
// search from the destination, each harvesting reached bike-share stations.
// It picks the single station reached by both searches with the lowest
// combined cost; it does not search a bike leg between two different
// stations. It exploits the "read-only shared graph, many concurrent
// routers" guarantee (spec.md §5) to run the two searches concurrently, each
// on its own *streetrouter.Router instance over the same *graphmodel.Graph.
package legorchestrator
