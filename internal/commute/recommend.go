package commute

import (
	"sort"

	"github.com/randytsao24/subwayfood/internal/models"
)

// Recommendation pairs a restaurant with the route station it was found near
type Recommendation struct {
	Restaurant models.Restaurant
	Station    models.Station
	Value      float64
}

// ValueScore is rating per price level. Unrated restaurants score 0 and a
// missing price level counts as 1.
func ValueScore(r models.Restaurant) float64 {
	return r.RatingValue() / float64(max(r.Price(), 1))
}

// RecommendFood ranks restaurants along a route. Each station contributes its
// TopPerStation best-rated restaurants in route order; the pooled candidates
// are then ordered by rankedBefore and cut to MaxRecommendations.
//
// A route with no nearby restaurants yields an empty, non-nil slice.
func (r *Recommender) RecommendFood(route []models.Station) []Recommendation {
	candidates := []Recommendation{}

	for _, station := range route {
		nearby := r.restaurantsByStation[station.ID]
		if len(nearby) == 0 {
			continue
		}

		sorted := make([]models.Restaurant, len(nearby))
		copy(sorted, nearby)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].RatingValue() > sorted[j].RatingValue()
		})

		if len(sorted) > TopPerStation {
			sorted = sorted[:TopPerStation]
		}

		for _, restaurant := range sorted {
			candidates = append(candidates, Recommendation{
				Restaurant: restaurant,
				Station:    station,
				Value:      ValueScore(restaurant),
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return rankedBefore(candidates[i], candidates[j])
	})

	if len(candidates) > MaxRecommendations {
		candidates = candidates[:MaxRecommendations]
	}

	return candidates
}

// rankedBefore orders by value score when the gap exceeds ValueDominance and
// by the host station's food diversity otherwise. The relation is not
// transitive across chains of near-ties; stable sorting keeps the outcome
// deterministic for a given input order.
func rankedBefore(a, b Recommendation) bool {
	if a.Value-b.Value > ValueDominance {
		return true
	}
	if b.Value-a.Value > ValueDominance {
		return false
	}
	return a.Station.FoodMetrics.FoodDiversity > b.Station.FoodMetrics.FoodDiversity
}
