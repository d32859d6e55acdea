package handlers

import (
	"github.com/randytsao24/subwayfood/internal/commute"
	"github.com/randytsao24/subwayfood/internal/models"
)

// CommuteProvider abstracts route finding and food ranking for testability.
type CommuteProvider interface {
	FindRoute(start, end models.Station) commute.Route
	RecommendFood(route []models.Station) []commute.Recommendation
}
