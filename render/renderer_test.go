package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transit-tools/transport-catalogue/catalogue"
)

func testCatalogue() *catalogue.Catalogue {
	cat := catalogue.New()
	cat.AddStop("Harbour", orb.Point{37.20, 55.60})
	cat.AddStop("Market", orb.Point{37.21, 55.61})
	cat.AddStop("Unused", orb.Point{37.25, 55.65})
	cat.AddBus("24", []string{"Harbour", "Market", "Harbour"}, false)
	return cat
}

func renderToString(t *testing.T, cat *catalogue.Catalogue) string {
	t.Helper()
	var buf bytes.Buffer
	NewMapRenderer(DefaultSettings(), cat).Render(&buf)
	return buf.String()
}

func TestRender_ContainsRouteStopsAndLabels(t *testing.T) {
	out := renderToString(t, testCatalogue())

	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "<polyline")
	assert.Contains(t, out, "<circle")
	assert.Contains(t, out, ">24</text>")
	assert.Contains(t, out, ">Harbour</text>")
	assert.Contains(t, out, ">Market</text>")
	// Stops no bus passes through stay off the map.
	assert.NotContains(t, out, "Unused")
}

func TestRender_LayerOrder(t *testing.T) {
	out := renderToString(t, testCatalogue())

	line := strings.Index(out, "<polyline")
	circle := strings.Index(out, "<circle")
	require.GreaterOrEqual(t, line, 0)
	require.GreaterOrEqual(t, circle, 0)
	assert.Less(t, line, circle, "route lines must be drawn under stop circles")
}

func TestRender_IsDeterministic(t *testing.T) {
	cat := testCatalogue()
	assert.Equal(t, renderToString(t, cat), renderToString(t, cat))
}

func TestRender_EmptyCatalogue(t *testing.T) {
	out := renderToString(t, catalogue.New())
	assert.Contains(t, out, "<svg")
	assert.NotContains(t, out, "<polyline")
}

func TestPaletteColorCycles(t *testing.T) {
	s := Settings{ColorPalette: []string{"red", "blue"}}
	assert.Equal(t, "red", s.paletteColor(0))
	assert.Equal(t, "blue", s.paletteColor(1))
	assert.Equal(t, "red", s.paletteColor(2))

	var empty Settings
	assert.Equal(t, "black", empty.paletteColor(3))
}
