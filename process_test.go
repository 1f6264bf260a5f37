package transcat

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transit-tools/transport-catalogue/config"
)

const pipelineDocument = `{
	"base_requests": [
		{"type": "Stop", "name": "Airport", "latitude": 55.611087, "longitude": 37.20829,
		 "road_distances": {"Harbour": 7000}},
		{"type": "Stop", "name": "Harbour", "latitude": 55.595884, "longitude": 37.209755},
		{"type": "Stop", "name": "Island", "latitude": 55.632761, "longitude": 37.333324},
		{"type": "Bus", "name": "X", "stops": ["Airport", "Harbour"], "is_roundtrip": true}
	],
	"routing_settings": {"bus_wait_time": 6, "bus_velocity": 60},
	"render_settings": {
		"width": 600, "height": 400, "padding": 50,
		"line_width": 14, "stop_radius": 5,
		"bus_label_font_size": 20, "bus_label_offset": [7, 15],
		"stop_label_font_size": 18, "stop_label_offset": [7, -3],
		"underlayer_color": [255, 255, 255, 0.85], "underlayer_width": 3,
		"color_palette": ["green", [255, 160, 0], "red"]
	},
	"stat_requests": [
		{"id": 1, "type": "Bus", "name": "X"},
		{"id": 2, "type": "Stop", "name": "Airport"},
		{"id": 3, "type": "Route", "from": "Airport", "to": "Harbour"},
		{"id": 4, "type": "Bus", "name": "unknown"},
		{"id": 5, "type": "Route", "from": "Airport", "to": "Nowhere"},
		{"id": 6, "type": "Map"},
		{"id": 7, "type": "Stop", "name": "Nowhere"},
		{"id": 8, "type": "Route", "from": "Airport", "to": "Island"}
	]
}`

func processPipeline(t *testing.T) []map[string]any {
	t.Helper()
	doc, err := LoadDocument(strings.NewReader(pipelineDocument))
	require.NoError(t, err)
	handler, err := NewRequestHandlerFromDocument(doc, config.Default())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, handler.ProcessStatRequests(doc, &buf))

	var responses []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &responses))
	require.Len(t, responses, 8)
	return responses
}

func TestProcessStatRequests_BusStats(t *testing.T) {
	responses := processPipeline(t)

	// Bus X was expanded to Airport-Harbour-Airport; the return hop
	// falls back to the forward distance.
	bus := responses[0]
	assert.EqualValues(t, 1, bus["request_id"])
	assert.EqualValues(t, 3, bus["stop_count"])
	assert.EqualValues(t, 2, bus["unique_stop_count"])
	assert.InDelta(t, 14000.0, bus["route_length"].(float64), 1e-9)
	assert.Greater(t, bus["curvature"].(float64), 1.0)
}

func TestProcessStatRequests_StopInfo(t *testing.T) {
	responses := processPipeline(t)

	stop := responses[1]
	assert.EqualValues(t, 2, stop["request_id"])
	assert.Equal(t, []any{"X"}, stop["buses"])

	missing := responses[6]
	assert.EqualValues(t, 7, missing["request_id"])
	assert.Equal(t, "not found", missing["error_message"])
}

func TestProcessStatRequests_Route(t *testing.T) {
	responses := processPipeline(t)

	route := responses[2]
	assert.EqualValues(t, 3, route["request_id"])
	assert.InDelta(t, 13.0, route["total_time"].(float64), 1e-9)

	items := route["items"].([]any)
	require.Len(t, items, 2)

	wait := items[0].(map[string]any)
	assert.Equal(t, "Wait", wait["type"])
	assert.Equal(t, "Airport", wait["stop_name"])
	assert.InDelta(t, 6.0, wait["time"].(float64), 1e-9)

	ride := items[1].(map[string]any)
	assert.Equal(t, "Bus", ride["type"])
	assert.Equal(t, "X", ride["bus"])
	assert.EqualValues(t, 1, ride["span_count"])
	assert.InDelta(t, 7.0, ride["time"].(float64), 1e-9)
}

func TestProcessStatRequests_NotFoundCases(t *testing.T) {
	responses := processPipeline(t)

	// Unknown bus, unknown endpoint, and a stop no bus can reach all
	// answer with an ordinary not-found payload.
	for _, i := range []int{3, 4, 7} {
		assert.Equal(t, "not found", responses[i]["error_message"], "response %d", i)
	}
}

func TestProcessStatRequests_Map(t *testing.T) {
	responses := processPipeline(t)

	m := responses[5]
	assert.EqualValues(t, 6, m["request_id"])
	svg := m["map"].(string)
	assert.Contains(t, svg, "<svg")
	assert.Contains(t, svg, "<polyline")
	assert.Contains(t, svg, "Harbour")
}
