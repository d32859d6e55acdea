package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/randytsao24/subwayfood/internal/cache"
	"github.com/randytsao24/subwayfood/internal/commute"
	"github.com/randytsao24/subwayfood/internal/location"
	"github.com/randytsao24/subwayfood/internal/models"
)

const noRecommendationsMessage = "No restaurant recommendations found along this route"

// RouteStop is a station on a commuter route
type RouteStop struct {
	ID          models.ID           `json:"id"`
	Name        string              `json:"name"`
	Borough     string              `json:"borough"`
	Coordinates *models.Coordinates `json:"coordinates,omitempty"`
	Routes      []string            `json:"routes"`
}

// FoodPick is a ranked restaurant with display fields resolved
type FoodPick struct {
	ID           models.ID `json:"id"`
	Name         string    `json:"name"`
	Cuisine      string    `json:"cuisine"`
	Rating       float64   `json:"rating"`
	PriceLevel   int       `json:"price_level"`
	PriceSymbols string    `json:"price_symbols"`
	Value        float64   `json:"value"`
	StationID    models.ID `json:"station_id"`
	StationName  string    `json:"station_name"`
}

// CommuteResult is the cached payload for a from/to pair
type CommuteResult struct {
	Strategy        commute.Strategy `json:"strategy"`
	Line            string           `json:"line,omitempty"`
	LineColor       string           `json:"line_color,omitempty"`
	Transfer        *RouteStop       `json:"transfer,omitempty"`
	Route           []RouteStop      `json:"route"`
	Recommendations []FoodPick       `json:"recommendations"`
	Message         string           `json:"message,omitempty"`
}

type CommuterHandler struct {
	stations *location.StationService
	lines    *location.LineService
	commuter CommuteProvider
	results  *cache.Cache[CommuteResult]
}

func NewCommuterHandler(
	stations *location.StationService,
	lines *location.LineService,
	commuter CommuteProvider,
	results *cache.Cache[CommuteResult],
) *CommuterHandler {
	return &CommuterHandler{
		stations: stations,
		lines:    lines,
		commuter: commuter,
		results:  results,
	}
}

// GetRoute finds a route between ?from= and ?to= and ranks food along it
func (h *CommuterHandler) GetRoute(w http.ResponseWriter, r *http.Request) {
	from := strings.TrimSpace(r.URL.Query().Get("from"))
	to := strings.TrimSpace(r.URL.Query().Get("to"))

	if from == "" || to == "" {
		writeError(w, http.StatusBadRequest, "Missing stations", "Please select both departure and destination stations")
		return
	}
	if from == to {
		writeError(w, http.StatusBadRequest, "Invalid route", "Departure and destination stations cannot be the same")
		return
	}

	key := from + "|" + to
	if cached, ok := h.results.Get(key); ok {
		writeJSON(w, http.StatusOK, newCommuteResponse(cached, true))
		return
	}

	start, ok := h.stations.GetByID(models.ID(from))
	if !ok {
		writeError(w, http.StatusNotFound, "Station not found", "Cannot find selected station data")
		return
	}
	end, ok := h.stations.GetByID(models.ID(to))
	if !ok {
		writeError(w, http.StatusNotFound, "Station not found", "Cannot find selected station data")
		return
	}

	route := h.commuter.FindRoute(start, end)
	if !route.Usable() {
		slog.Warn("no route found",
			"from", start.ID,
			"to", end.ID,
			"strategy", route.Strategy.String(),
		)
		writeError(w, http.StatusUnprocessableEntity, "No route", "Cannot find a route between the selected stations")
		return
	}

	recs := h.commuter.RecommendFood(route.Stations)
	result := h.buildResult(route, recs)

	slog.Info("commute planned",
		"from", start.ID,
		"to", end.ID,
		"strategy", route.Strategy.String(),
		"stations", len(result.Route),
		"recommendations", len(result.Recommendations),
	)

	h.results.Set(key, result)
	writeJSON(w, http.StatusOK, newCommuteResponse(result, false))
}

func (h *CommuterHandler) buildResult(route commute.Route, recs []commute.Recommendation) CommuteResult {
	result := CommuteResult{
		Strategy:        route.Strategy,
		Line:            route.Line,
		Route:           make([]RouteStop, len(route.Stations)),
		Recommendations: make([]FoodPick, len(recs)),
	}

	if route.Line != "" {
		result.LineColor = h.lines.Color(route.Line)
	}
	if route.Transfer != nil {
		stop := newRouteStop(*route.Transfer)
		result.Transfer = &stop
	}
	for i, s := range route.Stations {
		result.Route[i] = newRouteStop(s)
	}
	for i, rec := range recs {
		result.Recommendations[i] = newFoodPick(rec)
	}
	if len(recs) == 0 {
		result.Message = noRecommendationsMessage
	}

	return result
}

func newRouteStop(s models.Station) RouteStop {
	return RouteStop{
		ID:          s.ID,
		Name:        s.Name,
		Borough:     s.Borough,
		Coordinates: s.Coordinates,
		Routes:      s.Routes,
	}
}

func newFoodPick(rec commute.Recommendation) FoodPick {
	return FoodPick{
		ID:           rec.Restaurant.ID,
		Name:         rec.Restaurant.Name,
		Cuisine:      rec.Restaurant.CuisineType(),
		Rating:       rec.Restaurant.RatingValue(),
		PriceLevel:   rec.Restaurant.Price(),
		PriceSymbols: models.PriceSymbols(rec.Restaurant.Price()),
		Value:        rec.Value,
		StationID:    rec.Station.ID,
		StationName:  rec.Station.Name,
	}
}

func newCommuteResponse(result CommuteResult, cached bool) map[string]any {
	return map[string]any{
		"success":         true,
		"cached":          cached,
		"strategy":        result.Strategy,
		"line":            result.Line,
		"line_color":      result.LineColor,
		"transfer":        result.Transfer,
		"count":           len(result.Route),
		"route":           result.Route,
		"recommendations": result.Recommendations,
		"message":         result.Message,
	}
}
