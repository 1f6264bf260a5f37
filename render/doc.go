// Package render draws the transit network as an SVG vector map: route
// polylines colored from a cyclic palette, bus name labels, stop circles
// and stop name labels, all projected from geographic coordinates onto
// the canvas with a uniform zoom.
package render
