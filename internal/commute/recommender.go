// Package commute finds an approximate station path between two subway
// stations and ranks the restaurants along it.
//
// A Recommender is built once from the station and restaurant snapshots and
// never mutated afterwards, so a single instance can serve concurrent requests.
package commute

import (
	"github.com/randytsao24/subwayfood/internal/models"
)

const (
	// MinDirectDistanceKm is the start-end distance above which the direct
	// strategy looks for intermediate stations
	MinDirectDistanceKm = 1.0

	// DetourTolerance bounds how far a midpoint may pull the path off the
	// straight start-end line
	DetourTolerance = 1.3

	// MaxMidpoints caps the intermediate stations added by the direct strategy
	MaxMidpoints = 5

	// TopPerStation is how many restaurants each route station contributes
	TopPerStation = 3

	// MaxRecommendations caps the ranked recommendation list
	MaxRecommendations = 5

	// ValueDominance is the value-score gap above which value alone decides order
	ValueDominance = 0.5
)

// Recommender computes routes and recommendations over a static dataset
type Recommender struct {
	stations             []models.Station
	restaurantsByStation map[models.ID][]models.Restaurant
}

// NewRecommender indexes the given snapshots. The slices are copied.
func NewRecommender(stations []models.Station, restaurants []models.Restaurant) *Recommender {
	r := &Recommender{
		stations:             make([]models.Station, len(stations)),
		restaurantsByStation: make(map[models.ID][]models.Restaurant),
	}
	copy(r.stations, stations)

	for _, restaurant := range restaurants {
		id := restaurant.NearestStationID()
		if id == "" {
			continue
		}
		r.restaurantsByStation[id] = append(r.restaurantsByStation[id], restaurant)
	}

	return r
}

// StationCount returns the number of indexed stations
func (r *Recommender) StationCount() int {
	return len(r.stations)
}
