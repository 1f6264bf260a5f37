// Package catalogue stores the static transit network in memory for fast
// lookups: stops with geographic positions, bus routes as ordered stop
// sequences, and the directed road-distance table between neighbouring
// stops.
//
// The catalogue is filled once from base requests and is read-only
// afterwards. Buses reference stops by name, never by pointer, so the
// routing layer can keep its own handles without lifetime coupling.
package catalogue
