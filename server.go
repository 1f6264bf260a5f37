package transcat

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
)

var (
	server *http.Server
)

// StartServer exposes the loaded catalogue over HTTP. All endpoints are
// read-only; the network cannot be modified once the server is up.
func StartServer(port int, h *RequestHandler) {
	r := mux.NewRouter()
	r.HandleFunc("/api/health", h.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/bus/{name}", h.handleBusStats).Methods(http.MethodGet)
	r.HandleFunc("/api/stop/{name}", h.handleStopBuses).Methods(http.MethodGet)
	r.HandleFunc("/api/map", h.handleMap).Methods(http.MethodGet)
	r.HandleFunc("/api/route", h.handleRoute).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", port)
	server = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s", addr)
}

func HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if server != nil {
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("server shutdown error: %v", err)
		} else {
			log.Printf("server shut down successfully")
		}
	}
}

func (h *RequestHandler) handleBusStats(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	stats, ok := h.BusStats(name)
	if !ok {
		writeNotFound(w)
		return
	}
	writeJSON(w, busStatsResponse{
		RouteLength:     stats.RouteLength,
		Curvature:       stats.Curvature,
		StopCount:       stats.StopCount,
		UniqueStopCount: stats.UniqueStopCount,
	})
}

func (h *RequestHandler) handleStopBuses(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	buses, ok := h.StopBuses(name)
	if !ok {
		writeNotFound(w)
		return
	}
	writeJSON(w, stopBusesResponse{Buses: buses})
}

func (h *RequestHandler) handleMap(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(h.RenderMap())
}

func (h *RequestHandler) handleRoute(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(errorResponse{ErrorMessage: "from and to query parameters are required"})
		return
	}
	itinerary := h.Route(from, to)
	if itinerary == nil {
		writeNotFound(w)
		return
	}
	writeJSON(w, buildRouteResponse(0, itinerary))
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}

func writeNotFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	_ = json.NewEncoder(w).Encode(errorResponse{ErrorMessage: notFoundMessage})
}
