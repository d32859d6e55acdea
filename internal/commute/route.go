package commute

import (
	"math"
	"sort"

	"github.com/randytsao24/subwayfood/internal/location"
	"github.com/randytsao24/subwayfood/internal/models"
)

// Strategy identifies which tier of the route search produced a route
type Strategy int

const (
	// StrategyNone marks a degenerate route: same start and end, missing
	// coordinates, or an empty dataset
	StrategyNone Strategy = iota
	// StrategySharedLine walks the stations of a line common to both ends
	StrategySharedLine
	// StrategyTransfer joins two direct legs through a hub station
	StrategyTransfer
	// StrategyDirect interpolates stations along the straight start-end line
	StrategyDirect
)

func (s Strategy) String() string {
	switch s {
	case StrategySharedLine:
		return "shared_line"
	case StrategyTransfer:
		return "transfer"
	case StrategyDirect:
		return "direct"
	default:
		return "none"
	}
}

// MarshalText encodes the strategy by name
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Route is an ordered best-effort station path from origin to destination
type Route struct {
	Stations []models.Station
	Strategy Strategy

	// Line is the common line walked by StrategySharedLine
	Line string

	// Transfer is the hub used by StrategyTransfer
	Transfer *models.Station
}

// Usable reports whether the route connects two distinct stations
func (r Route) Usable() bool {
	return len(r.Stations) >= 2
}

// FindRoute returns a plausible station sequence from start to end.
//
// Callers are expected to reject start.ID == end.ID; if they don't, the
// result is the single-station route [start].
func (r *Recommender) FindRoute(start, end models.Station) Route {
	if start.ID == end.ID {
		return Route{Stations: []models.Station{start}, Strategy: StrategyNone}
	}
	if len(r.stations) == 0 || !start.HasCoordinates() || !end.HasCoordinates() {
		return Route{Strategy: StrategyNone}
	}

	if line, stations, ok := r.sharedLineRoute(start, end); ok {
		return Route{Stations: stations, Strategy: StrategySharedLine, Line: line}
	}

	if candidates := r.transferCandidates(start, end); len(candidates) > 0 {
		// most-connected hub wins; ties keep dataset order
		transfer := candidates[0]
		leg1 := r.directRoute(start, transfer)
		leg2 := r.directRoute(transfer, end)
		if len(leg1) > 0 && len(leg2) > 1 {
			stations := append(leg1, leg2[1:]...)
			return Route{Stations: stations, Strategy: StrategyTransfer, Transfer: &transfer}
		}
	}

	return Route{Stations: r.directRoute(start, end), Strategy: StrategyDirect}
}

// firstCommonLine returns the first of start's routes, in start's order,
// that end also serves. The order is an arbitrary tie-break inherited from
// the dataset and carries no ranking meaning.
func firstCommonLine(start, end models.Station) (string, bool) {
	for _, line := range start.Routes {
		if end.ServesLine(line) {
			return line, true
		}
	}
	return "", false
}

func (r *Recommender) sharedLineRoute(start, end models.Station) (string, []models.Station, bool) {
	line, ok := firstCommonLine(start, end)
	if !ok {
		return "", nil, false
	}

	var onLine []models.Station
	for _, station := range r.stations {
		if station.ServesLine(line) && station.HasCoordinates() {
			onLine = append(onLine, station)
		}
	}
	if len(onLine) < 2 {
		return line, nil, false
	}

	lngDiff := math.Abs(start.Coordinates.Longitude - end.Coordinates.Longitude)
	latDiff := math.Abs(start.Coordinates.Latitude - end.Coordinates.Latitude)

	if lngDiff > latDiff {
		sort.SliceStable(onLine, func(i, j int) bool {
			return onLine[i].Coordinates.Longitude < onLine[j].Coordinates.Longitude
		})
	} else {
		sort.SliceStable(onLine, func(i, j int) bool {
			return onLine[i].Coordinates.Latitude < onLine[j].Coordinates.Latitude
		})
	}

	startIdx := indexOf(onLine, start.ID)
	endIdx := indexOf(onLine, end.ID)
	if startIdx < 0 || endIdx < 0 {
		return line, nil, false
	}

	if startIdx < endIdx {
		return line, onLine[startIdx : endIdx+1], true
	}

	path := make([]models.Station, 0, startIdx-endIdx+1)
	for i := startIdx; i >= endIdx; i-- {
		path = append(path, onLine[i])
	}
	return line, path, true
}

// transferCandidates returns mapped stations other than start and end that
// share a line with each of them, most routes first.
func (r *Recommender) transferCandidates(start, end models.Station) []models.Station {
	if len(start.Routes) == 0 || len(end.Routes) == 0 {
		return nil
	}

	var candidates []models.Station
	for _, station := range r.stations {
		if station.ID == start.ID || station.ID == end.ID || !station.HasCoordinates() {
			continue
		}
		if sharesLine(station, start) && sharesLine(station, end) {
			candidates = append(candidates, station)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return len(candidates[i].Routes) > len(candidates[j].Routes)
	})

	return candidates
}

// directRoute builds a path from geography alone: start, up to MaxMidpoints
// stations hugging the start-end segment, and end, ordered by distance from start.
func (r *Recommender) directRoute(start, end models.Station) []models.Station {
	from, to := *start.Coordinates, *end.Coordinates
	path := []models.Station{start}

	if location.Distance(from, to) > MinDirectDistanceKm {
		var midpoints []models.Station
		for _, station := range r.stations {
			if station.ID == start.ID || station.ID == end.ID || !station.HasCoordinates() {
				continue
			}
			if location.IsBetween(*station.Coordinates, from, to, DetourTolerance) {
				midpoints = append(midpoints, station)
			}
		}

		sort.SliceStable(midpoints, func(i, j int) bool {
			return location.DistanceToSegment(*midpoints[i].Coordinates, from, to) <
				location.DistanceToSegment(*midpoints[j].Coordinates, from, to)
		})

		if len(midpoints) > MaxMidpoints {
			midpoints = midpoints[:MaxMidpoints]
		}
		path = append(path, midpoints...)
	}

	path = append(path, end)

	// this sort, not the append order above, decides the final sequence
	sort.SliceStable(path, func(i, j int) bool {
		return location.Distance(from, *path[i].Coordinates) < location.Distance(from, *path[j].Coordinates)
	})

	return path
}

func indexOf(stations []models.Station, id models.ID) int {
	for i, s := range stations {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func sharesLine(a, b models.Station) bool {
	for _, line := range a.Routes {
		if b.ServesLine(line) {
			return true
		}
	}
	return false
}
