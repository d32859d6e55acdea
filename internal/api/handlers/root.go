package handlers

import (
	"net/http"
)

type RootHandler struct{}

func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

func (h *RootHandler) Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name":        "subwayfood",
		"description": "NYC subway food atlas: stations, restaurants and food along your commute",
		"version":     "1.0.0",
		"endpoints": map[string]string{
			"GET /api":                                    "API information",
			"GET /health":                                 "Health check",
			"GET /atlas/info":                             "Dataset coverage",
			"GET /atlas/stations":                         "Stations (?line= to filter)",
			"GET /atlas/stations/selectable":              "Stations offered in route pickers",
			"GET /atlas/stations/{stationId}":             "Single station",
			"GET /atlas/stations/{stationId}/restaurants": "Restaurants near a station (?cuisine=&price=)",
			"GET /atlas/lines":                            "Subway lines",
			"GET /atlas/stats/{chart}":                    "Chart data: diversity, boroughs, cuisines, prices",
			"GET /commuter/route":                         "Route with food recommendations (?from=&to=)",
		},
	})
}

func (h *RootHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]any{
		"error":   "Route not found",
		"message": "Check the root endpoint (/api) for available routes",
	})
}
