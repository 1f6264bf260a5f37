package catalogue

import "github.com/paulmach/orb"

// Stop is a named point of the network where passengers board buses.
// Position is (lon, lat).
type Stop struct {
	Name     string
	Position orb.Point
}

// Bus is a route: an ordered sequence of stop names plus a roundtrip flag.
// For roundtrip buses the sequence forms a loop (the first stop repeats at
// the end); for the rest the sequence already includes the way back.
type Bus struct {
	Name      string
	Stops     []string
	Roundtrip bool
}

// BusStats is the per-route statistics answer: total and unique stop
// counts, road length in meters and curvature (road length divided by the
// great-circle length of the same sequence).
type BusStats struct {
	StopCount       int
	UniqueStopCount int
	RouteLength     float64
	Curvature       float64
}
