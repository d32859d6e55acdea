package location

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
)

// Data file names inside the data directory
const (
	StationsFile    = "stations.json"
	RestaurantsFile = "restaurants.json"
	LinesFile       = "subway_lines.json"
)

// Dataset bundles the three snapshots served by the atlas
type Dataset struct {
	Stations    *StationService
	Restaurants *RestaurantService
	Lines       *LineService
}

// LoadDataset reads stations, restaurants and subway lines from dir
func LoadDataset(dir string) (*Dataset, error) {
	ds := &Dataset{
		Stations:    NewStationService(),
		Restaurants: NewRestaurantService(),
		Lines:       NewLineService(),
	}

	if err := ds.Stations.Load(filepath.Join(dir, StationsFile)); err != nil {
		return nil, fmt.Errorf("loading stations: %w", err)
	}
	if err := ds.Restaurants.Load(filepath.Join(dir, RestaurantsFile)); err != nil {
		return nil, fmt.Errorf("loading restaurants: %w", err)
	}
	if err := ds.Lines.Load(filepath.Join(dir, LinesFile)); err != nil {
		return nil, fmt.Errorf("loading subway lines: %w", err)
	}

	return ds, nil
}

// decodeRecords decodes a JSON array one element at a time. Elements that
// fail to decode are logged and skipped; only a document that is not an
// array is an error.
func decodeRecords[T any](data []byte, kind string) ([]T, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	records := make([]T, 0, len(raw))
	for i, item := range raw {
		var record T
		if err := json.Unmarshal(item, &record); err != nil {
			slog.Warn("skipping malformed record",
				"kind", kind,
				"index", i,
				"error", err,
			)
			continue
		}
		records = append(records, record)
	}
	return records, nil
}
