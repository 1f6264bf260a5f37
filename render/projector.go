package render

import (
	"math"

	"github.com/paulmach/orb"
)

// epsilon guards the zoom computation against zero-width coordinate
// ranges caused by float rounding.
const epsilon = 1e-6

func isZero(v float64) bool { return math.Abs(v) < epsilon }

// sphereProjector maps geographic coordinates onto the canvas: the
// network's bounding box is scaled uniformly to fit (width, height) minus
// padding, with north up.
type sphereProjector struct {
	padding float64
	minLon  float64
	maxLat  float64
	zoom    float64
}

// newSphereProjector fits a projector to the given points. With no points
// every projection lands on the padding corner.
func newSphereProjector(points []orb.Point, width, height, padding float64) sphereProjector {
	p := sphereProjector{padding: padding}
	if len(points) == 0 {
		return p
	}

	minLon, maxLon := points[0].Lon(), points[0].Lon()
	minLat, maxLat := points[0].Lat(), points[0].Lat()
	for _, pt := range points[1:] {
		minLon = math.Min(minLon, pt.Lon())
		maxLon = math.Max(maxLon, pt.Lon())
		minLat = math.Min(minLat, pt.Lat())
		maxLat = math.Max(maxLat, pt.Lat())
	}
	p.minLon = minLon
	p.maxLat = maxLat

	var widthZoom, heightZoom float64
	hasWidthZoom := !isZero(maxLon - minLon)
	if hasWidthZoom {
		widthZoom = (width - 2*padding) / (maxLon - minLon)
	}
	hasHeightZoom := !isZero(maxLat - minLat)
	if hasHeightZoom {
		heightZoom = (height - 2*padding) / (maxLat - minLat)
	}

	switch {
	case hasWidthZoom && hasHeightZoom:
		p.zoom = math.Min(widthZoom, heightZoom)
	case hasWidthZoom:
		p.zoom = widthZoom
	case hasHeightZoom:
		p.zoom = heightZoom
	}
	return p
}

// project returns the canvas position for a geographic point.
func (p sphereProjector) project(pt orb.Point) (x, y float64) {
	x = (pt.Lon()-p.minLon)*p.zoom + p.padding
	y = (p.maxLat-pt.Lat())*p.zoom + p.padding
	return x, y
}
