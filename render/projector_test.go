package render

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestSphereProjector_ScalesAndFlipsLatitude(t *testing.T) {
	points := []orb.Point{{0, 0}, {10, 10}}
	p := newSphereProjector(points, 110, 110, 5)

	// zoom = (110 - 2*5) / 10 = 10 on both axes.
	x, y := p.project(orb.Point{0, 10}) // north-west corner
	assert.InDelta(t, 5.0, x, 1e-9)
	assert.InDelta(t, 5.0, y, 1e-9)

	x, y = p.project(orb.Point{10, 0}) // south-east corner
	assert.InDelta(t, 105.0, x, 1e-9)
	assert.InDelta(t, 105.0, y, 1e-9)
}

func TestSphereProjector_DegenerateRanges(t *testing.T) {
	// All points on one meridian: only the latitude range drives zoom.
	p := newSphereProjector([]orb.Point{{3, 0}, {3, 10}}, 100, 100, 10)
	x, y := p.project(orb.Point{3, 10})
	assert.InDelta(t, 10.0, x, 1e-9)
	assert.InDelta(t, 10.0, y, 1e-9)
	x, y = p.project(orb.Point{3, 0})
	assert.InDelta(t, 10.0, x, 1e-9)
	assert.InDelta(t, 90.0, y, 1e-9)

	// A single point projects onto the padding corner.
	p = newSphereProjector([]orb.Point{{7, 7}}, 100, 100, 10)
	x, y = p.project(orb.Point{7, 7})
	assert.InDelta(t, 10.0, x, 1e-9)
	assert.InDelta(t, 10.0, y, 1e-9)

	// No points at all: projector still usable.
	p = newSphereProjector(nil, 100, 100, 10)
	x, y = p.project(orb.Point{1, 2})
	assert.InDelta(t, 10.0, x, 1e-9)
	assert.InDelta(t, 10.0, y, 1e-9)
}
