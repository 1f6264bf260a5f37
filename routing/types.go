package routing

import "errors"

// DefaultMaxRouteSpans caps how many stop-to-stop hops ahead a single ride
// edge may cover when Settings leaves MaxRouteSpans unset. Twenty hops is
// longer than almost any single ride a passenger takes; trips beyond it
// chain shorter edges instead.
const DefaultMaxRouteSpans = 20

// kmhToMetersPerMinute converts a km/h velocity into meters per minute,
// matching the meters of the distance table and the minutes of edge
// weights.
const kmhToMetersPerMinute = 1000.0 / 60.0

// Settings carries the routing parameters supplied with the input
// document.
type Settings struct {
	BusWaitTime   float64 // minutes a passenger waits at every stop before boarding
	BusVelocity   float64 // bus velocity, km/h
	MaxRouteSpans int     // ride-edge fanout bound; 0 means DefaultMaxRouteSpans
}

// Construction errors. Building aborts on the first one; a partially
// built router is never returned.
var (
	ErrNonPositiveWaitTime = errors.New("routing: bus wait time must be positive")
	ErrNonPositiveVelocity = errors.New("routing: bus velocity must be positive")
	ErrNegativeMaxSpans    = errors.New("routing: max route spans must not be negative")
	ErrMissingDistance     = errors.New("routing: no road distance between stops")
)

// SegmentKind discriminates itinerary segments.
type SegmentKind int

const (
	// SegmentWait is waiting at a stop for the next bus.
	SegmentWait SegmentKind = iota
	// SegmentRide is riding a bus over one or more hops.
	SegmentRide
)

// Segment is one leg of an itinerary. StopName is set for waits, BusName
// and SpanCount for rides; Time is the leg duration in minutes.
type Segment struct {
	Kind      SegmentKind
	StopName  string
	BusName   string
	SpanCount int
	Time      float64
}

func waitSegment(stop string, minutes float64) Segment {
	return Segment{Kind: SegmentWait, StopName: stop, Time: minutes}
}

func rideSegment(bus string, spans int, minutes float64) Segment {
	return Segment{Kind: SegmentRide, BusName: bus, SpanCount: spans, Time: minutes}
}

// Itinerary is a complete answer to a route query: ordered wait and ride
// segments plus their total duration in minutes.
type Itinerary struct {
	Segments  []Segment
	TotalTime float64
}
