// Package handlers contains HTTP request handlers
package handlers

import (
	"net/http"
	"time"
)

// DatasetCounter reports how many records a loaded snapshot holds
type DatasetCounter interface {
	Count() int
}

type HealthHandler struct {
	startTime   time.Time
	stations    DatasetCounter
	restaurants DatasetCounter
}

func NewHealthHandler(stations, restaurants DatasetCounter) *HealthHandler {
	return &HealthHandler{
		startTime:   time.Now(),
		stations:    stations,
		restaurants: restaurants,
	}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   "1.0.0",
		"uptime":    time.Since(h.startTime).String(),
		"dataset": map[string]int{
			"stations":    h.stations.Count(),
			"restaurants": h.restaurants.Count(),
		},
	})
}
