package routing

import (
	"fmt"

	"github.com/transit-tools/transport-catalogue/catalogue"
)

// TransportRouter answers best-route queries over a finished catalogue.
// It owns the route graph and the segment table built from it; both are
// immutable after construction, so one router serves concurrent queries.
type TransportRouter struct {
	settings   Settings
	graph      *Graph
	stopVertex map[string]VertexID // stop name -> arrival vertex
	segments   []Segment           // indexed by EdgeID
}

// NewTransportRouter validates the settings and builds the route graph:
// two vertices and one wait edge per stop in sorted-stop order, then ride
// edges for every bus in sorted-bus order. Construction fails when the
// settings are out of range or a ride edge needs a road distance the
// catalogue does not have in either direction.
func NewTransportRouter(cat *catalogue.Catalogue, settings Settings) (*TransportRouter, error) {
	switch {
	case settings.BusWaitTime <= 0:
		return nil, ErrNonPositiveWaitTime
	case settings.BusVelocity <= 0:
		return nil, ErrNonPositiveVelocity
	case settings.MaxRouteSpans < 0:
		return nil, ErrNegativeMaxSpans
	}
	if settings.MaxRouteSpans == 0 {
		settings.MaxRouteSpans = DefaultMaxRouteSpans
	}

	stops := cat.Stops()
	r := &TransportRouter{
		settings:   settings,
		graph:      NewGraph(len(stops) * 2),
		stopVertex: make(map[string]VertexID, len(stops)),
		segments:   make([]Segment, 0, len(stops)),
	}

	// Wait edges first: arrival -> departure for every stop.
	next := VertexID(0)
	for _, stop := range stops {
		r.stopVertex[stop.Name] = next
		r.graph.AddEdge(Edge{From: next, To: next + 1, Weight: settings.BusWaitTime})
		r.segments = append(r.segments, waitSegment(stop.Name, settings.BusWaitTime))
		next += 2
	}

	for _, bus := range cat.Buses() {
		if err := r.addRideEdges(cat, bus); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// addRideEdges generates ride edges for one bus: departure(stop i) ->
// arrival(stop j) for every i < j within the fanout bound, and the
// symmetric reverse edge when the route is not a loop. Reverse distances
// are summed independently because the distance table may be asymmetric.
func (r *TransportRouter) addRideEdges(cat *catalogue.Catalogue, bus *catalogue.Bus) error {
	stops := bus.Stops
	if len(stops) < 2 {
		return nil
	}
	metersPerMinute := r.settings.BusVelocity * kmhToMetersPerMinute

	for i := 0; i < len(stops); i++ {
		for j := i + 1; j < len(stops) && j-i <= r.settings.MaxRouteSpans; j++ {
			forward, err := r.spanDistance(cat, bus.Name, stops, i+1, j, false)
			if err != nil {
				return err
			}
			r.graph.AddEdge(Edge{
				From:   r.stopVertex[stops[i]] + 1,
				To:     r.stopVertex[stops[j]],
				Weight: forward / metersPerMinute,
			})
			r.segments = append(r.segments, rideSegment(bus.Name, j-i, forward/metersPerMinute))

			if bus.Roundtrip {
				continue
			}
			reverse, err := r.spanDistance(cat, bus.Name, stops, i+1, j, true)
			if err != nil {
				return err
			}
			r.graph.AddEdge(Edge{
				From:   r.stopVertex[stops[j]] + 1,
				To:     r.stopVertex[stops[i]],
				Weight: reverse / metersPerMinute,
			})
			r.segments = append(r.segments, rideSegment(bus.Name, j-i, reverse/metersPerMinute))
		}
	}
	return nil
}

// spanDistance sums the road distance over stops[lo-1..hi], hop by hop,
// in the forward or reverse direction.
func (r *TransportRouter) spanDistance(cat *catalogue.Catalogue, busName string, stops []string, lo, hi int, reversed bool) (float64, error) {
	var total float64
	for k := lo; k <= hi; k++ {
		from, to := stops[k-1], stops[k]
		if reversed {
			from, to = to, from
		}
		d, ok := cat.RoadDistance(from, to)
		if !ok {
			return 0, fmt.Errorf("%w: bus %q, %q -> %q", ErrMissingDistance, busName, from, to)
		}
		total += d
	}
	return total, nil
}

// Route finds the quickest itinerary between two stops. It returns nil
// when either stop name is unknown or no connection exists — both are
// ordinary outcomes, not errors. Querying a stop against itself yields an
// empty itinerary with zero total time.
func (r *TransportRouter) Route(from, to string) *Itinerary {
	fromVertex, okFrom := r.stopVertex[from]
	toVertex, okTo := r.stopVertex[to]
	if !okFrom || !okTo {
		return nil
	}
	path, ok := ShortestPath(r.graph, fromVertex, toVertex)
	if !ok {
		return nil
	}
	itinerary := &Itinerary{
		Segments:  make([]Segment, 0, len(path.Edges)),
		TotalTime: path.Weight,
	}
	for _, id := range path.Edges {
		itinerary.Segments = append(itinerary.Segments, r.segments[id])
	}
	return itinerary
}

// Graph exposes the built route graph for inspection.
func (r *TransportRouter) Graph() *Graph { return r.graph }

// Settings returns the effective settings, with defaults applied.
func (r *TransportRouter) Settings() Settings { return r.settings }
