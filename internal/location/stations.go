package location

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/randytsao24/subwayfood/internal/models"
)

// StationService manages subway station data
type StationService struct {
	stations []models.Station
	byID     map[models.ID]int
	mu       sync.RWMutex
	loaded   bool
}

// NewStationService creates a new station service
func NewStationService() *StationService {
	return &StationService{
		byID: make(map[models.ID]int),
	}
}

// Load reads station data from a stations.json file
func (s *StationService) Load(filepath string) error {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return fmt.Errorf("reading stations file: %w", err)
	}

	stations, err := decodeRecords[models.Station](data, "station")
	if err != nil {
		return fmt.Errorf("parsing stations JSON: %w", err)
	}

	if len(stations) == 0 {
		return fmt.Errorf("stations file has no records")
	}

	s.Set(stations)
	return nil
}

// Set replaces the station snapshot. Missing route lists become empty.
func (s *StationService) Set(stations []models.Station) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stations = make([]models.Station, 0, len(stations))
	s.byID = make(map[models.ID]int, len(stations))

	for _, station := range stations {
		if station.Routes == nil {
			station.Routes = []string{}
		}
		// first record wins on duplicate ids
		if _, dup := s.byID[station.ID]; !dup {
			s.byID[station.ID] = len(s.stations)
		}
		s.stations = append(s.stations, station)
	}

	s.loaded = true
}

// All returns every station in source order
func (s *StationService) All() []models.Station {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Station, len(s.stations))
	copy(result, s.stations)
	return result
}

// GetByID returns a station by its ID
func (s *StationService) GetByID(id models.ID) (models.Station, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return models.Station{}, false
	}
	return s.stations[i], true
}

// ByLine returns stations served by a line, in source order
func (s *StationService) ByLine(line string) []models.Station {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []models.Station
	for _, station := range s.stations {
		if station.ServesLine(line) {
			result = append(result, station)
		}
	}
	return result
}

// Selectable returns the stations offered in the departure/destination
// pickers: mapped stations only, one per name, sorted by name. When names
// collide the station with more routes wins, then the one with higher ridership.
func (s *StationService) Selectable() []models.Station {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byName := make(map[string]models.Station)
	for _, station := range s.stations {
		if !station.HasCoordinates() {
			continue
		}

		existing, seen := byName[station.Name]
		if !seen {
			byName[station.Name] = station
			continue
		}

		newCount, oldCount := len(station.Routes), len(existing.Routes)
		if newCount > oldCount || (newCount == oldCount && station.Ridership > existing.Ridership) {
			byName[station.Name] = station
		}
	}

	result := make([]models.Station, 0, len(byName))
	for _, station := range byName {
		result = append(result, station)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Boroughs returns a list of all unique boroughs in source order
func (s *StationService) Boroughs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var boroughs []string
	for _, station := range s.stations {
		if station.Borough == "" || seen[station.Borough] {
			continue
		}
		seen[station.Borough] = true
		boroughs = append(boroughs, station.Borough)
	}
	return boroughs
}

// Count returns the number of loaded stations
func (s *StationService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.stations)
}

// IsLoaded returns true if data has been loaded
func (s *StationService) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}
