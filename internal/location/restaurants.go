package location

import (
	"fmt"
	"os"
	"sync"

	"github.com/randytsao24/subwayfood/internal/models"
)

// RestaurantFilter narrows the restaurants shown for a station.
// Zero values mean "all".
type RestaurantFilter struct {
	Cuisine    string
	PriceLevel int
}

func (f RestaurantFilter) matches(r models.Restaurant) bool {
	if f.Cuisine != "" && r.CuisineType() != f.Cuisine {
		return false
	}
	if f.PriceLevel != 0 && r.Price() != f.PriceLevel {
		return false
	}
	return true
}

// RestaurantService manages restaurant data
type RestaurantService struct {
	restaurants []models.Restaurant
	mu          sync.RWMutex
	loaded      bool
}

// NewRestaurantService creates a new restaurant service
func NewRestaurantService() *RestaurantService {
	return &RestaurantService{}
}

// Load reads restaurant data from a restaurants.json file
func (s *RestaurantService) Load(filepath string) error {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return fmt.Errorf("reading restaurants file: %w", err)
	}

	restaurants, err := decodeRecords[models.Restaurant](data, "restaurant")
	if err != nil {
		return fmt.Errorf("parsing restaurants JSON: %w", err)
	}

	s.Set(restaurants)
	return nil
}

// Set replaces the restaurant snapshot
func (s *RestaurantService) Set(restaurants []models.Restaurant) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.restaurants = restaurants
	s.loaded = true
}

// All returns every restaurant in source order
func (s *RestaurantService) All() []models.Restaurant {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Restaurant, len(s.restaurants))
	copy(result, s.restaurants)
	return result
}

// NearStation returns restaurants whose nearest station is stationID and
// that pass the filter, in source order
func (s *RestaurantService) NearStation(stationID models.ID, filter RestaurantFilter) []models.Restaurant {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []models.Restaurant
	for _, r := range s.restaurants {
		if r.NearestStationID() != stationID || !filter.matches(r) {
			continue
		}
		result = append(result, r)
	}
	return result
}

// Cuisines returns the distinct cuisine types in source order
func (s *RestaurantService) Cuisines() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var cuisines []string
	for _, r := range s.restaurants {
		c := r.CuisineType()
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		cuisines = append(cuisines, c)
	}
	return cuisines
}

// Count returns the number of loaded restaurants
func (s *RestaurantService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.restaurants)
}

// IsLoaded returns true if data has been loaded
func (s *RestaurantService) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}
