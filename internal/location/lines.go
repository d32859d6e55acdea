// Package location loads the station, restaurant and subway line snapshots
// and answers lookups against them
package location

import (
	"fmt"
	"os"
	"sync"

	"github.com/randytsao24/subwayfood/internal/models"
)

// LineService manages subway line metadata
type LineService struct {
	lines  []models.SubwayLine
	byID   map[string]models.SubwayLine
	mu     sync.RWMutex
	loaded bool
}

// NewLineService creates a new line service
func NewLineService() *LineService {
	return &LineService{
		byID: make(map[string]models.SubwayLine),
	}
}

// Load reads line data from a subway_lines.json file
func (s *LineService) Load(filepath string) error {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return fmt.Errorf("reading subway lines file: %w", err)
	}

	lines, err := decodeRecords[models.SubwayLine](data, "subway line")
	if err != nil {
		return fmt.Errorf("parsing subway lines JSON: %w", err)
	}

	s.Set(lines)
	return nil
}

// Set replaces the line snapshot
func (s *LineService) Set(lines []models.SubwayLine) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = lines
	s.byID = make(map[string]models.SubwayLine, len(lines))
	for _, line := range lines {
		if _, dup := s.byID[line.ID]; !dup {
			s.byID[line.ID] = line
		}
	}
	s.loaded = true
}

// Get returns a line by its id
func (s *LineService) Get(id string) (models.SubwayLine, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	line, exists := s.byID[id]
	return line, exists
}

// Color returns the display color of a line, or "" if unknown
func (s *LineService) Color(id string) string {
	line, ok := s.Get(id)
	if !ok {
		return ""
	}
	return line.Color
}

// GetAll returns all lines in source order
func (s *LineService) GetAll() []models.SubwayLine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.SubwayLine, len(s.lines))
	copy(result, s.lines)
	return result
}

// Count returns the number of loaded lines
func (s *LineService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lines)
}

// IsLoaded returns true if data has been loaded
func (s *LineService) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}
