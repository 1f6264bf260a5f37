package catalogue

import (
	orbgeo "github.com/paulmach/orb/geo"
)

// BusStats computes route statistics for the named bus, or ok=false when
// the bus is unknown. Road length follows the registered distance table
// (with the reverse-pair fallback); curvature compares it against the
// great-circle length of the same stop sequence.
func (c *Catalogue) BusStats(name string) (BusStats, bool) {
	bus, ok := c.buses[name]
	if !ok {
		return BusStats{}, false
	}

	stats := BusStats{
		StopCount:       len(bus.Stops),
		UniqueStopCount: countUnique(bus.Stops),
		RouteLength:     c.roadLength(bus.Stops),
	}
	if geoLength := c.greatCircleLength(bus.Stops); geoLength > 0 {
		stats.Curvature = stats.RouteLength / geoLength
	}
	return stats, true
}

func (c *Catalogue) roadLength(stops []string) float64 {
	var length float64
	for i := 1; i < len(stops); i++ {
		if d, ok := c.RoadDistance(stops[i-1], stops[i]); ok {
			length += d
		}
	}
	return length
}

func (c *Catalogue) greatCircleLength(stops []string) float64 {
	var length float64
	for i := 1; i < len(stops); i++ {
		from, okFrom := c.stops[stops[i-1]]
		to, okTo := c.stops[stops[i]]
		if okFrom && okTo {
			length += orbgeo.DistanceHaversine(from.Position, to.Position)
		}
	}
	return length
}

func countUnique(stops []string) int {
	seen := make(map[string]struct{}, len(stops))
	for _, name := range stops {
		seen[name] = struct{}{}
	}
	return len(seen)
}
