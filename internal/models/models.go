// Package models defines shared data types
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ID is a record identifier. The upstream data pipeline emits numeric ids for
// some collections and string ids for others, so both are accepted.
type ID string

// UnmarshalJSON accepts a JSON string or number
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decoding id: %w", err)
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decoding id: %w", err)
	}
	*id = ID(canonicalNumber(n))
	return nil
}

// canonicalNumber renders integral numbers without fraction or exponent so
// that 101, 101.0 and 1.01e2 all name the same record
func canonicalNumber(n json.Number) string {
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10)
	}
	if f, err := n.Float64(); err == nil && f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return strconv.FormatInt(int64(f), 10)
	}
	return n.String()
}

// String returns the id as a plain string
func (id ID) String() string {
	return string(id)
}

// Coordinates is a WGS84 point in decimal degrees
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// FoodMetrics are per-station aggregates computed by the data pipeline
type FoodMetrics struct {
	RestaurantCount   int                `json:"restaurantCount"`
	FoodDiversity     float64            `json:"foodDiversity"`
	DominantFood      string             `json:"dominantFood,omitempty"`
	AvgRating         float64            `json:"avgRating"`
	PriceDistribution map[string]float64 `json:"priceDistribution,omitempty"`
}

// Station represents a subway station with its food metrics
type Station struct {
	ID          ID           `json:"id"`
	Name        string       `json:"name"`
	Borough     string       `json:"borough"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Routes      []string     `json:"routes"`
	Ridership   float64      `json:"ridership"`
	FoodMetrics FoodMetrics  `json:"foodMetrics"`
}

// UnmarshalJSON decodes a station, treating a routes value that is not a
// list as an empty list
func (s *Station) UnmarshalJSON(data []byte) error {
	type plain Station
	aux := struct {
		*plain
		Routes json.RawMessage `json:"routes"`
	}{plain: (*plain)(s)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	s.Routes = decodeRoutes(aux.Routes)
	return nil
}

// decodeRoutes keeps the string and numeric entries of a JSON array
func decodeRoutes(raw json.RawMessage) []string {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return []string{}
	}

	routes := make([]string, 0, len(items))
	for _, item := range items {
		var route string
		if err := json.Unmarshal(item, &route); err == nil {
			if route != "" {
				routes = append(routes, route)
			}
			continue
		}
		var n json.Number
		if err := json.Unmarshal(item, &n); err == nil {
			routes = append(routes, canonicalNumber(n))
		}
	}
	return routes
}

// HasCoordinates reports whether the station can be placed on a map.
// A zero latitude or longitude is treated as missing.
func (s Station) HasCoordinates() bool {
	return s.Coordinates != nil &&
		s.Coordinates.Latitude != 0 &&
		s.Coordinates.Longitude != 0
}

// ServesLine reports whether the station is on the given line
func (s Station) ServesLine(line string) bool {
	for _, r := range s.Routes {
		if r == line {
			return true
		}
	}
	return false
}

// Cuisine is the restaurant's cuisine category
type Cuisine struct {
	Type string `json:"type"`
}

// Rating is an aggregate user rating
type Rating struct {
	Value     float64 `json:"value"`
	UserCount int     `json:"user_count"`
}

// StationRef is a weak reference from a restaurant to its nearest station
type StationRef struct {
	ID       ID      `json:"id"`
	Distance float64 `json:"distance"`
}

// Restaurant represents a restaurant near the subway network
type Restaurant struct {
	ID             ID           `json:"id"`
	Name           string       `json:"name"`
	Coordinates    *Coordinates `json:"coordinates,omitempty"`
	Cuisine        *Cuisine     `json:"cuisine,omitempty"`
	PriceLevel     *int         `json:"priceLevel,omitempty"`
	Rating         *Rating      `json:"rating,omitempty"`
	NearestStation *StationRef  `json:"nearestStation,omitempty"`
}

// UnmarshalJSON decodes a restaurant. A price level or rating of the wrong
// type is dropped rather than failing the record; a price level written as
// dollar signs ("$$") is counted.
func (r *Restaurant) UnmarshalJSON(data []byte) error {
	type plain Restaurant
	aux := struct {
		*plain
		PriceLevel json.RawMessage `json:"priceLevel"`
		Rating     json.RawMessage `json:"rating"`
	}{plain: (*plain)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	r.PriceLevel = decodePriceLevel(aux.PriceLevel)
	r.Rating = decodeRating(aux.Rating)
	return nil
}

func decodePriceLevel(raw json.RawMessage) *int {
	if len(raw) == 0 {
		return nil
	}

	var level int
	var f float64
	var s string
	switch {
	case json.Unmarshal(raw, &f) == nil:
		level = int(math.Round(f))
	case json.Unmarshal(raw, &s) == nil:
		s = strings.TrimSpace(s)
		if s != "" && strings.Trim(s, "$") == "" {
			level = len(s)
		} else if n, err := strconv.Atoi(s); err == nil {
			level = n
		}
	}

	if level < 1 || level > 4 {
		return nil
	}
	return &level
}

func decodeRating(raw json.RawMessage) *Rating {
	var fields struct {
		Value     json.RawMessage `json:"value"`
		UserCount json.RawMessage `json:"user_count"`
	}
	if len(raw) == 0 || json.Unmarshal(raw, &fields) != nil || len(fields.Value) == 0 {
		return nil
	}

	value, ok := decodeFloat(fields.Value)
	if !ok {
		return nil
	}
	count, _ := decodeFloat(fields.UserCount)
	return &Rating{Value: value, UserCount: int(count)}
}

// decodeFloat accepts a JSON number or a numeric string
func decodeFloat(raw json.RawMessage) (float64, bool) {
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// RatingValue returns the rating value, or 0 when unrated
func (r Restaurant) RatingValue() float64 {
	if r.Rating == nil {
		return 0
	}
	return r.Rating.Value
}

// Price returns the price level, or 0 when absent
func (r Restaurant) Price() int {
	if r.PriceLevel == nil {
		return 0
	}
	return *r.PriceLevel
}

// CuisineType returns the cuisine category, or "" when absent
func (r Restaurant) CuisineType() string {
	if r.Cuisine == nil {
		return ""
	}
	return r.Cuisine.Type
}

// NearestStationID returns the id of the nearest station, or "" when absent
func (r Restaurant) NearestStationID() ID {
	if r.NearestStation == nil {
		return ""
	}
	return r.NearestStation.ID
}

// LatLng is a polyline vertex as stored in subway_lines.json
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// SubwayLine is a line's display metadata
type SubwayLine struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Color       string   `json:"color"`
	Coordinates []LatLng `json:"coordinates,omitempty"`
}

// PriceSymbols renders a price level as dollar signs
func PriceSymbols(level int) string {
	switch level {
	case 1:
		return "$"
	case 2:
		return "$$"
	case 3:
		return "$$$"
	case 4:
		return "$$$$"
	default:
		return "Unknown"
	}
}

// ParsePriceLevel parses a 1-4 price filter value
func ParsePriceLevel(s string) (int, error) {
	level, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parsing price level %q: %w", s, err)
	}
	if level < 1 || level > 4 {
		return 0, fmt.Errorf("price level %d out of range 1-4", level)
	}
	return level, nil
}
