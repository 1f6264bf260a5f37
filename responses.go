package transcat

import (
	"encoding/json"
	"io"

	"github.com/transit-tools/transport-catalogue/routing"
)

const notFoundMessage = "not found"

type errorResponse struct {
	RequestID    int    `json:"request_id"`
	ErrorMessage string `json:"error_message"`
}

type busStatsResponse struct {
	RequestID       int     `json:"request_id"`
	RouteLength     float64 `json:"route_length"`
	Curvature       float64 `json:"curvature"`
	StopCount       int     `json:"stop_count"`
	UniqueStopCount int     `json:"unique_stop_count"`
}

type stopBusesResponse struct {
	RequestID int      `json:"request_id"`
	Buses     []string `json:"buses"`
}

type mapResponse struct {
	RequestID int    `json:"request_id"`
	Map       string `json:"map"`
}

type routeResponse struct {
	RequestID int         `json:"request_id"`
	TotalTime float64     `json:"total_time"`
	Items     []routeItem `json:"items"`
}

// routeItem is one itinerary leg: type "Wait" carries stop_name, type
// "Bus" carries bus and span_count.
type routeItem struct {
	Type      string  `json:"type"`
	StopName  string  `json:"stop_name,omitempty"`
	Bus       string  `json:"bus,omitempty"`
	SpanCount int     `json:"span_count,omitempty"`
	Time      float64 `json:"time"`
}

// ProcessStatRequests answers every stat request in document order and
// writes the response array as JSON.
func (h *RequestHandler) ProcessStatRequests(doc *Document, w io.Writer) error {
	responses := make([]any, 0, len(doc.StatRequests))
	for _, req := range doc.StatRequests {
		responses = append(responses, h.processStatRequest(req))
	}
	enc := json.NewEncoder(w)
	return enc.Encode(responses)
}

func (h *RequestHandler) processStatRequest(req statRequest) any {
	switch req.Type {
	case typeBus:
		stats, ok := h.BusStats(req.Name)
		if !ok {
			return errorResponse{RequestID: req.ID, ErrorMessage: notFoundMessage}
		}
		return busStatsResponse{
			RequestID:       req.ID,
			RouteLength:     stats.RouteLength,
			Curvature:       stats.Curvature,
			StopCount:       stats.StopCount,
			UniqueStopCount: stats.UniqueStopCount,
		}
	case typeStop:
		buses, ok := h.StopBuses(req.Name)
		if !ok {
			return errorResponse{RequestID: req.ID, ErrorMessage: notFoundMessage}
		}
		if buses == nil {
			buses = []string{}
		}
		return stopBusesResponse{RequestID: req.ID, Buses: buses}
	case typeMap:
		return mapResponse{RequestID: req.ID, Map: string(h.RenderMap())}
	case typeRoute:
		itinerary := h.Route(req.From, req.To)
		if itinerary == nil {
			return errorResponse{RequestID: req.ID, ErrorMessage: notFoundMessage}
		}
		return buildRouteResponse(req.ID, itinerary)
	default:
		return errorResponse{RequestID: req.ID, ErrorMessage: "unknown type"}
	}
}

func buildRouteResponse(requestID int, itinerary *routing.Itinerary) routeResponse {
	items := make([]routeItem, 0, len(itinerary.Segments))
	for _, seg := range itinerary.Segments {
		switch seg.Kind {
		case routing.SegmentWait:
			items = append(items, routeItem{Type: "Wait", StopName: seg.StopName, Time: seg.Time})
		case routing.SegmentRide:
			items = append(items, routeItem{Type: "Bus", Bus: seg.BusName, SpanCount: seg.SpanCount, Time: seg.Time})
		}
	}
	return routeResponse{RequestID: requestID, TotalTime: itinerary.TotalTime, Items: items}
}
