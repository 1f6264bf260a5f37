package catalogue

import (
	"sort"

	"github.com/paulmach/orb"
)

type stopPair struct {
	from string
	to   string
}

// Catalogue is the in-memory transit index. Registration happens during
// the load phase; all query methods are safe for concurrent readers once
// loading is done.
type Catalogue struct {
	stops     map[string]*Stop
	buses     map[string]*Bus
	stopBuses map[string]map[string]struct{} // stop name -> bus names through it
	distances map[stopPair]float64           // directed road distance, meters
}

// New returns an empty catalogue.
func New() *Catalogue {
	return &Catalogue{
		stops:     map[string]*Stop{},
		buses:     map[string]*Bus{},
		stopBuses: map[string]map[string]struct{}{},
		distances: map[stopPair]float64{},
	}
}

// AddStop registers a stop. Re-adding a name overwrites its position.
func (c *Catalogue) AddStop(name string, position orb.Point) {
	c.stops[name] = &Stop{Name: name, Position: position}
	if _, ok := c.stopBuses[name]; !ok {
		c.stopBuses[name] = map[string]struct{}{}
	}
}

// SetDistance registers the directed road distance in meters between two
// stops. The reverse direction may carry a different value; see
// RoadDistance for the fallback rule.
func (c *Catalogue) SetDistance(from, to string, meters float64) {
	c.distances[stopPair{from, to}] = meters
}

// AddBus registers a route over already-registered stops. The stop
// sequence is stored as given; expanding out-and-back routes is the
// loader's job.
func (c *Catalogue) AddBus(name string, stops []string, roundtrip bool) {
	bus := &Bus{Name: name, Stops: stops, Roundtrip: roundtrip}
	c.buses[name] = bus
	for _, stopName := range stops {
		if c.stopBuses[stopName] == nil {
			c.stopBuses[stopName] = map[string]struct{}{}
		}
		c.stopBuses[stopName][name] = struct{}{}
	}
}

// Stop looks a stop up by name.
func (c *Catalogue) Stop(name string) (*Stop, bool) {
	s, ok := c.stops[name]
	return s, ok
}

// Bus looks a route up by name.
func (c *Catalogue) Bus(name string) (*Bus, bool) {
	b, ok := c.buses[name]
	return b, ok
}

// Stops returns all stops sorted by name. The routing layer relies on this
// order when assigning vertex ids.
func (c *Catalogue) Stops() []*Stop {
	names := make([]string, 0, len(c.stops))
	for name := range c.stops {
		names = append(names, name)
	}
	sort.Strings(names)
	stops := make([]*Stop, len(names))
	for i, name := range names {
		stops[i] = c.stops[name]
	}
	return stops
}

// Buses returns all routes sorted by name.
func (c *Catalogue) Buses() []*Bus {
	names := make([]string, 0, len(c.buses))
	for name := range c.buses {
		names = append(names, name)
	}
	sort.Strings(names)
	buses := make([]*Bus, len(names))
	for i, name := range names {
		buses[i] = c.buses[name]
	}
	return buses
}

// RoadDistance returns the road distance in meters from one stop to
// another. When the requested direction is absent the reverse pair is
// used: a single supplied value means the road is symmetric.
func (c *Catalogue) RoadDistance(from, to string) (float64, bool) {
	if d, ok := c.distances[stopPair{from, to}]; ok {
		return d, true
	}
	if d, ok := c.distances[stopPair{to, from}]; ok {
		return d, true
	}
	return 0, false
}

// StopBuses returns the sorted names of all buses passing through the
// stop, or ok=false for an unknown stop. A stop served by no bus yields an
// empty slice.
func (c *Catalogue) StopBuses(name string) ([]string, bool) {
	if _, ok := c.stops[name]; !ok {
		return nil, false
	}
	set := c.stopBuses[name]
	buses := make([]string, 0, len(set))
	for busName := range set {
		buses = append(buses, busName)
	}
	sort.Strings(buses)
	return buses, true
}
