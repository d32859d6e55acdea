// Package stats computes the aggregate figures behind the dashboard charts
package stats

import (
	"sort"

	"github.com/randytsao24/subwayfood/internal/models"
)

const (
	// TopStations is the size of the food diversity leaderboard
	TopStations = 10
	// TopCuisines is the number of cuisines reported by CuisineCounts
	TopCuisines = 10
)

// StationDiversity is one row of the diversity leaderboard
type StationDiversity struct {
	ID              models.ID `json:"id"`
	Name            string    `json:"name"`
	Borough         string    `json:"borough"`
	FoodDiversity   float64   `json:"food_diversity"`
	RestaurantCount int       `json:"restaurant_count"`
}

// Count is a labelled tally
type Count struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// TopDiversity ranks stations that have restaurants by food diversity,
// highest first, and keeps the top limit entries.
func TopDiversity(stations []models.Station, limit int) []StationDiversity {
	var ranked []StationDiversity
	for _, s := range stations {
		if s.FoodMetrics.RestaurantCount <= 0 {
			continue
		}
		ranked = append(ranked, StationDiversity{
			ID:              s.ID,
			Name:            s.Name,
			Borough:         s.Borough,
			FoodDiversity:   s.FoodMetrics.FoodDiversity,
			RestaurantCount: s.FoodMetrics.RestaurantCount,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].FoodDiversity > ranked[j].FoodDiversity
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// BoroughCounts tallies restaurants by the borough of their nearest station.
// Restaurants whose station is unknown or has no borough are skipped.
// Boroughs appear in order of first occurrence.
func BoroughCounts(stations []models.Station, restaurants []models.Restaurant) []Count {
	boroughOf := make(map[models.ID]string, len(stations))
	for _, s := range stations {
		if _, seen := boroughOf[s.ID]; !seen {
			boroughOf[s.ID] = s.Borough
		}
	}

	var order []string
	counts := make(map[string]int)
	for _, r := range restaurants {
		borough := boroughOf[r.NearestStationID()]
		if borough == "" {
			continue
		}
		if _, seen := counts[borough]; !seen {
			order = append(order, borough)
		}
		counts[borough]++
	}

	result := make([]Count, 0, len(order))
	for _, b := range order {
		result = append(result, Count{Label: b, Count: counts[b]})
	}
	return result
}

// CuisineCounts returns the limit most common cuisine types, most common first
func CuisineCounts(restaurants []models.Restaurant, limit int) []Count {
	var order []string
	counts := make(map[string]int)
	for _, r := range restaurants {
		c := r.CuisineType()
		if c == "" {
			continue
		}
		if _, seen := counts[c]; !seen {
			order = append(order, c)
		}
		counts[c]++
	}

	result := make([]Count, 0, len(order))
	for _, c := range order {
		result = append(result, Count{Label: c, Count: counts[c]})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}

// PriceCounts tallies restaurants per price level, always reporting all four
// levels from "$" to "$$$$". Restaurants without a valid level are skipped.
func PriceCounts(restaurants []models.Restaurant) []Count {
	var counts [4]int
	for _, r := range restaurants {
		if p := r.Price(); p >= 1 && p <= 4 {
			counts[p-1]++
		}
	}

	result := make([]Count, 4)
	for i, n := range counts {
		result[i] = Count{Label: models.PriceSymbols(i + 1), Count: n}
	}
	return result
}
