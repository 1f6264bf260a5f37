package render

import (
	"fmt"
	"io"
	"sort"

	svg "github.com/ajstarks/svgo/float"
	"github.com/paulmach/orb"

	"github.com/transit-tools/transport-catalogue/catalogue"
)

// MapRenderer draws every bus route of a catalogue. Rendering is
// deterministic: buses and stops are walked in name order, so the same
// catalogue always yields the same document.
type MapRenderer struct {
	settings Settings
	cat      *catalogue.Catalogue
}

// NewMapRenderer binds settings to a loaded catalogue.
func NewMapRenderer(settings Settings, cat *catalogue.Catalogue) *MapRenderer {
	return &MapRenderer{settings: settings, cat: cat}
}

// Render writes the SVG document: route lines first, then bus labels,
// then stop circles and stop labels, so later layers stay readable on
// top of earlier ones.
func (m *MapRenderer) Render(w io.Writer) {
	buses := m.drawableBuses()
	projector := newSphereProjector(
		m.allPositions(buses),
		m.settings.Width, m.settings.Height, m.settings.Padding,
	)

	canvas := svg.New(w)
	canvas.Start(m.settings.Width, m.settings.Height)
	m.renderRouteLines(canvas, buses, projector)
	m.renderBusLabels(canvas, buses, projector)
	stops := m.usedStops(buses)
	m.renderStopCircles(canvas, stops, projector)
	m.renderStopLabels(canvas, stops, projector)
	canvas.End()
}

// drawableBuses returns the buses with at least one stop, sorted by name.
func (m *MapRenderer) drawableBuses() []*catalogue.Bus {
	var buses []*catalogue.Bus
	for _, bus := range m.cat.Buses() {
		if len(bus.Stops) > 0 {
			buses = append(buses, bus)
		}
	}
	return buses
}

func (m *MapRenderer) allPositions(buses []*catalogue.Bus) []orb.Point {
	var points []orb.Point
	for _, bus := range buses {
		for _, name := range bus.Stops {
			if stop, ok := m.cat.Stop(name); ok {
				points = append(points, stop.Position)
			}
		}
	}
	return points
}

// usedStops returns the unique stops referenced by the buses, sorted by
// name.
func (m *MapRenderer) usedStops(buses []*catalogue.Bus) []*catalogue.Stop {
	seen := map[string]*catalogue.Stop{}
	for _, bus := range buses {
		for _, name := range bus.Stops {
			if stop, ok := m.cat.Stop(name); ok {
				seen[name] = stop
			}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	stops := make([]*catalogue.Stop, len(names))
	for i, name := range names {
		stops[i] = seen[name]
	}
	return stops
}

func (m *MapRenderer) renderRouteLines(canvas *svg.SVG, buses []*catalogue.Bus, projector sphereProjector) {
	for i, bus := range buses {
		xs := make([]float64, 0, len(bus.Stops))
		ys := make([]float64, 0, len(bus.Stops))
		for _, name := range bus.Stops {
			stop, ok := m.cat.Stop(name)
			if !ok {
				continue
			}
			x, y := projector.project(stop.Position)
			xs = append(xs, x)
			ys = append(ys, y)
		}
		canvas.Polyline(xs, ys, fmt.Sprintf(
			`fill="none" stroke="%s" stroke-width="%g" stroke-linecap="round" stroke-linejoin="round"`,
			m.settings.paletteColor(i), m.settings.LineWidth))
	}
}

// renderBusLabels labels each route at its first stop, and for
// out-and-back routes also at the turnaround stop when it differs.
func (m *MapRenderer) renderBusLabels(canvas *svg.SVG, buses []*catalogue.Bus, projector sphereProjector) {
	for i, bus := range buses {
		first, ok := m.cat.Stop(bus.Stops[0])
		if !ok {
			continue
		}
		color := m.settings.paletteColor(i)
		m.renderLabel(canvas, projector, first.Position, bus.Name, m.busLabelStyle(color), m.busLabelUnderlayerStyle())

		if bus.Roundtrip || len(bus.Stops) == 1 {
			continue
		}
		middle, ok := m.cat.Stop(bus.Stops[len(bus.Stops)/2])
		if !ok || middle.Position == first.Position {
			continue
		}
		m.renderLabel(canvas, projector, middle.Position, bus.Name, m.busLabelStyle(color), m.busLabelUnderlayerStyle())
	}
}

func (m *MapRenderer) renderStopCircles(canvas *svg.SVG, stops []*catalogue.Stop, projector sphereProjector) {
	for _, stop := range stops {
		x, y := projector.project(stop.Position)
		canvas.Circle(x, y, m.settings.StopRadius, `fill="white"`)
	}
}

func (m *MapRenderer) renderStopLabels(canvas *svg.SVG, stops []*catalogue.Stop, projector sphereProjector) {
	for _, stop := range stops {
		m.renderLabel(canvas, projector, stop.Position, stop.Name, m.stopLabelStyle(), m.stopLabelUnderlayerStyle())
	}
}

// renderLabel draws the underlayer copy first so the colored text sits on
// top of it.
func (m *MapRenderer) renderLabel(canvas *svg.SVG, projector sphereProjector, at orb.Point, text, style, underlayerStyle string) {
	x, y := projector.project(at)
	canvas.Text(x, y, text, underlayerStyle)
	canvas.Text(x, y, text, style)
}

func (m *MapRenderer) busLabelStyle(color string) string {
	return fmt.Sprintf(
		`dx="%g" dy="%g" font-size="%d" font-family="Verdana" font-weight="bold" fill="%s"`,
		m.settings.BusLabelOffset.X, m.settings.BusLabelOffset.Y, m.settings.BusLabelFontSize, color)
}

func (m *MapRenderer) busLabelUnderlayerStyle() string {
	return fmt.Sprintf(
		`dx="%g" dy="%g" font-size="%d" font-family="Verdana" font-weight="bold" %s`,
		m.settings.BusLabelOffset.X, m.settings.BusLabelOffset.Y, m.settings.BusLabelFontSize,
		m.underlayerAttrs())
}

func (m *MapRenderer) stopLabelStyle() string {
	return fmt.Sprintf(
		`dx="%g" dy="%g" font-size="%d" font-family="Verdana" fill="black"`,
		m.settings.StopLabelOffset.X, m.settings.StopLabelOffset.Y, m.settings.StopLabelFontSize)
}

func (m *MapRenderer) stopLabelUnderlayerStyle() string {
	return fmt.Sprintf(
		`dx="%g" dy="%g" font-size="%d" font-family="Verdana" %s`,
		m.settings.StopLabelOffset.X, m.settings.StopLabelOffset.Y, m.settings.StopLabelFontSize,
		m.underlayerAttrs())
}

func (m *MapRenderer) underlayerAttrs() string {
	return fmt.Sprintf(
		`fill="%s" stroke="%s" stroke-width="%g" stroke-linecap="round" stroke-linejoin="round"`,
		m.settings.UnderlayerColor, m.settings.UnderlayerColor, m.settings.UnderlayerWidth)
}
