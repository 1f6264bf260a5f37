package transcat

import (
	"encoding/json"
	"fmt"
	"io"
)

// Document is the JSON input: base requests filling the catalogue,
// optional routing and render settings, and the stat requests to answer.
type Document struct {
	BaseRequests    []baseRequest    `json:"base_requests"`
	RoutingSettings *routingSettings `json:"routing_settings"`
	RenderSettings  *renderSettings  `json:"render_settings"`
	StatRequests    []statRequest    `json:"stat_requests"`
}

// baseRequest covers both request shapes; Type tells them apart.
type baseRequest struct {
	Type          string             `json:"type"`
	Name          string             `json:"name"`
	Latitude      float64            `json:"latitude"`
	Longitude     float64            `json:"longitude"`
	RoadDistances map[string]float64 `json:"road_distances"`
	Stops         []string           `json:"stops"`
	IsRoundtrip   *bool              `json:"is_roundtrip"`
}

type routingSettings struct {
	BusWaitTime float64 `json:"bus_wait_time"`
	BusVelocity float64 `json:"bus_velocity"`
}

// renderSettings uses pointers so that absent fields fall back to the
// render defaults instead of zeroes.
type renderSettings struct {
	Width             *float64          `json:"width"`
	Height            *float64          `json:"height"`
	Padding           *float64          `json:"padding"`
	LineWidth         *float64          `json:"line_width"`
	StopRadius        *float64          `json:"stop_radius"`
	BusLabelFontSize  *int              `json:"bus_label_font_size"`
	BusLabelOffset    []float64         `json:"bus_label_offset"`
	StopLabelFontSize *int              `json:"stop_label_font_size"`
	StopLabelOffset   []float64         `json:"stop_label_offset"`
	UnderlayerColor   json.RawMessage   `json:"underlayer_color"`
	UnderlayerWidth   *float64          `json:"underlayer_width"`
	ColorPalette      []json.RawMessage `json:"color_palette"`
}

type statRequest struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`
	From string `json:"from"`
	To   string `json:"to"`
}

// Request type tags.
const (
	typeStop  = "Stop"
	typeBus   = "Bus"
	typeMap   = "Map"
	typeRoute = "Route"
)

// LoadDocument decodes an input document from JSON.
func LoadDocument(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return &doc, nil
}

// decodeColor accepts the document's color encodings: a plain SVG color
// string, [r,g,b] or [r,g,b,a]. Out-of-range components make the color
// invalid.
func decodeColor(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}
	var parts []float64
	if err := json.Unmarshal(raw, &parts); err != nil {
		return "", false
	}
	if len(parts) != 3 && len(parts) != 4 {
		return "", false
	}
	rgb := make([]int, 3)
	for i := 0; i < 3; i++ {
		v := int(parts[i])
		if float64(v) != parts[i] || v < 0 || v > 255 {
			return "", false
		}
		rgb[i] = v
	}
	if len(parts) == 3 {
		return fmt.Sprintf("rgb(%d,%d,%d)", rgb[0], rgb[1], rgb[2]), true
	}
	alpha := parts[3]
	if alpha < 0 || alpha > 1 {
		return "", false
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%g)", rgb[0], rgb[1], rgb[2], alpha), true
}
