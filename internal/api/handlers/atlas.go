package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/randytsao24/subwayfood/internal/location"
	"github.com/randytsao24/subwayfood/internal/models"
)

type AtlasHandler struct {
	stations    *location.StationService
	restaurants *location.RestaurantService
	lines       *location.LineService
}

func NewAtlasHandler(stations *location.StationService, restaurants *location.RestaurantService, lines *location.LineService) *AtlasHandler {
	return &AtlasHandler{
		stations:    stations,
		restaurants: restaurants,
		lines:       lines,
	}
}

// restaurantView adds display fields to a restaurant record
type restaurantView struct {
	models.Restaurant
	PriceSymbols string `json:"price_symbols"`
}

func newRestaurantViews(restaurants []models.Restaurant) []restaurantView {
	views := make([]restaurantView, len(restaurants))
	for i, r := range restaurants {
		views[i] = restaurantView{Restaurant: r, PriceSymbols: models.PriceSymbols(r.Price())}
	}
	return views
}

// GetInfo returns dataset coverage
func (h *AtlasHandler) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"service":     "NYC Subway Food Atlas",
		"description": "Subway stations, nearby restaurants and food along your commute",
		"coverage": map[string]any{
			"stations":    h.stations.Count(),
			"restaurants": h.restaurants.Count(),
			"lines":       h.lines.Count(),
		},
		"boroughs": h.stations.Boroughs(),
		"cuisines": h.restaurants.Cuisines(),
	})
}

// ListStations returns all stations, optionally only those on ?line=
func (h *AtlasHandler) ListStations(w http.ResponseWriter, r *http.Request) {
	line := strings.TrimSpace(r.URL.Query().Get("line"))

	var stations []models.Station
	if line != "" && line != "all" {
		stations = h.stations.ByLine(line)
	} else {
		stations = h.stations.All()
	}
	if stations == nil {
		stations = []models.Station{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"line":     line,
		"count":    len(stations),
		"stations": stations,
	})
}

// SelectableStations returns the de-duplicated station list for route pickers
func (h *AtlasHandler) SelectableStations(w http.ResponseWriter, r *http.Request) {
	stations := h.stations.Selectable()

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"count":    len(stations),
		"stations": stations,
	})
}

// GetStation returns a single station
func (h *AtlasHandler) GetStation(w http.ResponseWriter, r *http.Request) {
	id := models.ID(chi.URLParam(r, "stationId"))

	station, ok := h.stations.GetByID(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Station not found", "Station "+id.String()+" is not in the dataset")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"station": station,
	})
}

// GetStationRestaurants returns restaurants near a station, filtered by
// optional ?cuisine= and ?price= (1-4)
func (h *AtlasHandler) GetStationRestaurants(w http.ResponseWriter, r *http.Request) {
	id := models.ID(chi.URLParam(r, "stationId"))

	if _, ok := h.stations.GetByID(id); !ok {
		writeError(w, http.StatusNotFound, "Station not found", "Station "+id.String()+" is not in the dataset")
		return
	}

	filter := location.RestaurantFilter{}
	if cuisine := r.URL.Query().Get("cuisine"); cuisine != "" && cuisine != "all" {
		filter.Cuisine = cuisine
	}
	if price := r.URL.Query().Get("price"); price != "" && price != "all" {
		level, err := models.ParsePriceLevel(price)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid price parameter", "price must be between 1 and 4")
			return
		}
		filter.PriceLevel = level
	}

	restaurants := h.restaurants.NearStation(id, filter)

	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"station_id":  id,
		"count":       len(restaurants),
		"restaurants": newRestaurantViews(restaurants),
	})
}

// ListLines returns subway line metadata
func (h *AtlasHandler) ListLines(w http.ResponseWriter, r *http.Request) {
	lines := h.lines.GetAll()

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(lines),
		"lines":   lines,
	})
}
