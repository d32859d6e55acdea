package handlers

import (
	"net/http"

	"github.com/randytsao24/subwayfood/internal/location"
	"github.com/randytsao24/subwayfood/internal/stats"
)

type StatsHandler struct {
	stations    *location.StationService
	restaurants *location.RestaurantService
}

func NewStatsHandler(stations *location.StationService, restaurants *location.RestaurantService) *StatsHandler {
	return &StatsHandler{
		stations:    stations,
		restaurants: restaurants,
	}
}

// Diversity returns the top stations by food diversity
func (h *StatsHandler) Diversity(w http.ResponseWriter, r *http.Request) {
	rows := stats.TopDiversity(h.stations.All(), stats.TopStations)

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"count":    len(rows),
		"stations": rows,
	})
}

// Boroughs returns restaurant counts per borough
func (h *StatsHandler) Boroughs(w http.ResponseWriter, r *http.Request) {
	counts := stats.BoroughCounts(h.stations.All(), h.restaurants.All())

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"boroughs": counts,
	})
}

// Cuisines returns the most common cuisines
func (h *StatsHandler) Cuisines(w http.ResponseWriter, r *http.Request) {
	counts := stats.CuisineCounts(h.restaurants.All(), stats.TopCuisines)

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"cuisines": counts,
	})
}

// Prices returns restaurant counts per price level
func (h *StatsHandler) Prices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"prices":  stats.PriceCounts(h.restaurants.All()),
	})
}
