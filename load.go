package transcat

import (
	"github.com/paulmach/orb"

	"github.com/transit-tools/transport-catalogue/catalogue"
	"github.com/transit-tools/transport-catalogue/config"
	"github.com/transit-tools/transport-catalogue/render"
	"github.com/transit-tools/transport-catalogue/routing"
)

// NewRequestHandlerFromDocument builds the whole pipeline from an input
// document: catalogue from the base requests, router from the routing
// settings (the document overrides the config defaults) and renderer from
// the render settings.
func NewRequestHandlerFromDocument(doc *Document, cfg config.AppConfig) (*RequestHandler, error) {
	cat := buildCatalogue(doc)

	router, err := routing.NewTransportRouter(cat, routingSettingsFrom(doc, cfg.Routing))
	if err != nil {
		return nil, err
	}
	renderer := render.NewMapRenderer(renderSettingsFrom(doc), cat)
	return NewRequestHandler(cat, renderer, router), nil
}

// buildCatalogue registers stops first, then distances, then buses:
// distances and routes refer to stops by name, so the stops must exist
// before anything else.
func buildCatalogue(doc *Document) *catalogue.Catalogue {
	cat := catalogue.New()
	for _, req := range doc.BaseRequests {
		if req.Type != typeStop || req.Name == "" {
			continue
		}
		cat.AddStop(req.Name, orb.Point{req.Longitude, req.Latitude})
	}
	for _, req := range doc.BaseRequests {
		if req.Type != typeStop {
			continue
		}
		for to, meters := range req.RoadDistances {
			cat.SetDistance(req.Name, to, meters)
		}
	}
	for _, req := range doc.BaseRequests {
		if req.Type != typeBus || req.Name == "" || len(req.Stops) == 0 {
			continue
		}
		roundtrip := true
		if req.IsRoundtrip != nil {
			roundtrip = *req.IsRoundtrip
		}
		cat.AddBus(req.Name, expandRoute(req.Stops, roundtrip), roundtrip)
	}
	return cat
}

// expandRoute normalizes a stop list: out-and-back routes get the return
// leg appended (A B C -> A B C B A), loops get the first stop repeated at
// the end when the document leaves it off.
func expandRoute(stops []string, roundtrip bool) []string {
	if !roundtrip {
		expanded := make([]string, 0, len(stops)*2-1)
		expanded = append(expanded, stops...)
		for i := len(stops) - 2; i >= 0; i-- {
			expanded = append(expanded, stops[i])
		}
		return expanded
	}
	if stops[0] != stops[len(stops)-1] {
		return append(append(make([]string, 0, len(stops)+1), stops...), stops[0])
	}
	return stops
}

func routingSettingsFrom(doc *Document, defaults config.RoutingConfig) routing.Settings {
	settings := routing.Settings{
		BusWaitTime:   defaults.BusWaitTime,
		BusVelocity:   defaults.BusVelocity,
		MaxRouteSpans: defaults.MaxRouteSpans,
	}
	if doc.RoutingSettings != nil {
		settings.BusWaitTime = doc.RoutingSettings.BusWaitTime
		settings.BusVelocity = doc.RoutingSettings.BusVelocity
	}
	return settings
}

func renderSettingsFrom(doc *Document) render.Settings {
	settings := render.DefaultSettings()
	rs := doc.RenderSettings
	if rs == nil {
		return settings
	}
	setFloat := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setFloat(&settings.Width, rs.Width)
	setFloat(&settings.Height, rs.Height)
	setFloat(&settings.Padding, rs.Padding)
	setFloat(&settings.LineWidth, rs.LineWidth)
	setFloat(&settings.StopRadius, rs.StopRadius)
	setFloat(&settings.UnderlayerWidth, rs.UnderlayerWidth)
	if rs.BusLabelFontSize != nil {
		settings.BusLabelFontSize = *rs.BusLabelFontSize
	}
	if rs.StopLabelFontSize != nil {
		settings.StopLabelFontSize = *rs.StopLabelFontSize
	}
	if len(rs.BusLabelOffset) == 2 {
		settings.BusLabelOffset = render.Point{X: rs.BusLabelOffset[0], Y: rs.BusLabelOffset[1]}
	}
	if len(rs.StopLabelOffset) == 2 {
		settings.StopLabelOffset = render.Point{X: rs.StopLabelOffset[0], Y: rs.StopLabelOffset[1]}
	}
	if color, ok := decodeColor(rs.UnderlayerColor); ok {
		settings.UnderlayerColor = color
	}
	if len(rs.ColorPalette) > 0 {
		palette := make([]string, 0, len(rs.ColorPalette))
		for _, raw := range rs.ColorPalette {
			if color, ok := decodeColor(raw); ok {
				palette = append(palette, color)
			}
		}
		if len(palette) > 0 {
			settings.ColorPalette = palette
		}
	}
	return settings
}
