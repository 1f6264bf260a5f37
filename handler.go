package transcat

import (
	"bytes"
	"sync"

	"github.com/transit-tools/transport-catalogue/catalogue"
	"github.com/transit-tools/transport-catalogue/render"
	"github.com/transit-tools/transport-catalogue/routing"
)

// RequestHandler is the facade the stat-request processors and the HTTP
// layer talk to: one type bundling the catalogue, the map renderer and
// the router. It holds no per-request state and is safe for concurrent
// use once built.
type RequestHandler struct {
	cat      *catalogue.Catalogue
	renderer *render.MapRenderer
	router   *routing.TransportRouter

	renderOnce  sync.Once
	renderedMap []byte
}

// NewRequestHandler bundles the built subsystems.
func NewRequestHandler(cat *catalogue.Catalogue, renderer *render.MapRenderer, router *routing.TransportRouter) *RequestHandler {
	return &RequestHandler{cat: cat, renderer: renderer, router: router}
}

// BusStats returns route statistics, or ok=false for an unknown bus.
func (h *RequestHandler) BusStats(name string) (catalogue.BusStats, bool) {
	return h.cat.BusStats(name)
}

// StopBuses returns the sorted buses through a stop, or ok=false for an
// unknown stop.
func (h *RequestHandler) StopBuses(name string) ([]string, bool) {
	return h.cat.StopBuses(name)
}

// RenderMap returns the SVG map. The catalogue never changes after
// loading, so the document is rendered once and memoized.
func (h *RequestHandler) RenderMap() []byte {
	h.renderOnce.Do(func() {
		var buf bytes.Buffer
		h.renderer.Render(&buf)
		h.renderedMap = buf.Bytes()
	})
	return h.renderedMap
}

// Route proxies the router: nil means unknown stop or no connection.
func (h *RequestHandler) Route(from, to string) *routing.Itinerary {
	return h.router.Route(from, to)
}

// Catalogue exposes the loaded catalogue (used by the health endpoint).
func (h *RequestHandler) Catalogue() *catalogue.Catalogue { return h.cat }
