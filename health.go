package transcat

import (
	"encoding/json"
	"net/http"
)

type healthResponse struct {
	Status string `json:"status"`
	Stops  int    `json:"stops"`
	Buses  int    `json:"buses"`
}

func (h *RequestHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	resp := healthResponse{
		Status: "ok",
		Stops:  len(h.cat.Stops()),
		Buses:  len(h.cat.Buses()),
	}
	_ = json.NewEncoder(w).Encode(resp)
}
