package commute

import (
	"fmt"
	"testing"

	"github.com/randytsao24/subwayfood/internal/models"
)

func station(id string, lat, lng float64, routes ...string) models.Station {
	if routes == nil {
		routes = []string{}
	}
	return models.Station{
		ID:          models.ID(id),
		Name:        "Station " + id,
		Coordinates: &models.Coordinates{Latitude: lat, Longitude: lng},
		Routes:      routes,
	}
}

func stationIDs(stations []models.Station) []models.ID {
	ids := make([]models.ID, len(stations))
	for i, s := range stations {
		ids[i] = s.ID
	}
	return ids
}

func assertPath(t *testing.T, got []models.Station, want ...models.ID) {
	t.Helper()
	gotIDs := stationIDs(got)
	if fmt.Sprint(gotIDs) != fmt.Sprint(want) {
		t.Errorf("path = %v, want %v", gotIDs, want)
	}
}

func assertStrategy(t *testing.T, route Route, want Strategy) {
	t.Helper()
	if route.Strategy != want {
		t.Errorf("strategy = %s, want %s", route.Strategy, want)
	}
}

// ---------------------------------------------------------------------------
// Shared line
// ---------------------------------------------------------------------------

func TestFindRouteSharedLineScenario(t *testing.T) {
	s1 := station("S1", 40.70, -74.00, "A")
	s2 := station("S2", 40.72, -74.02, "A")
	s3 := station("S3", 40.75, -74.05, "A")
	rec := NewRecommender([]models.Station{s1, s2, s3}, nil)

	route := rec.FindRoute(s1, s3)
	assertStrategy(t, route, StrategySharedLine)
	assertPath(t, route.Stations, "S1", "S2", "S3")

	if route.Line != "A" {
		t.Errorf("line = %q, want A", route.Line)
	}
	if !route.Usable() {
		t.Error("expected a usable route")
	}
}

func TestFindRouteSharedLineReversed(t *testing.T) {
	s1 := station("S1", 40.70, -74.00, "A")
	s2 := station("S2", 40.72, -74.00, "A")
	s3 := station("S3", 40.75, -74.00, "A")
	rec := NewRecommender([]models.Station{s2, s3, s1}, nil)

	route := rec.FindRoute(s3, s1)
	assertStrategy(t, route, StrategySharedLine)
	assertPath(t, route.Stations, "S3", "S2", "S1")
}

func TestFindRouteSharedLineEastWest(t *testing.T) {
	w := station("W", 40.750, -74.00, "L")
	m := station("M", 40.740, -73.98, "L")
	e := station("E", 40.752, -73.95, "L")
	rec := NewRecommender([]models.Station{e, w, m}, nil)

	route := rec.FindRoute(e, w)
	assertStrategy(t, route, StrategySharedLine)
	assertPath(t, route.Stations, "E", "M", "W")
}

func TestFindRouteSharedLineMembership(t *testing.T) {
	start := station("start", 40.70, -74.00, "A", "C")
	mid1 := station("mid1", 40.71, -74.00, "A")
	other := station("other", 40.715, -74.00, "B")
	mid2 := station("mid2", 40.72, -74.00, "A", "B")
	end := station("end", 40.73, -74.00, "A")
	rec := NewRecommender([]models.Station{start, mid1, other, mid2, end}, nil)

	route := rec.FindRoute(start, end)
	assertStrategy(t, route, StrategySharedLine)

	stations := route.Stations
	if stations[0].ID != start.ID || stations[len(stations)-1].ID != end.ID {
		t.Fatalf("route must run from start to end, got %v", stationIDs(stations))
	}
	for _, s := range stations {
		if !s.ServesLine("A") {
			t.Errorf("station %s is not on line A", s.ID)
		}
	}
	assertPath(t, stations, "start", "mid1", "mid2", "end")
}

func TestFindRouteFirstCommonLineWins(t *testing.T) {
	start := station("start", 40.70, -74.00, "B", "A")
	end := station("end", 40.72, -74.00, "A", "B")
	rec := NewRecommender([]models.Station{start, end}, nil)

	route := rec.FindRoute(start, end)
	assertStrategy(t, route, StrategySharedLine)
	if route.Line != "B" {
		t.Errorf("line = %q, want B (first of start's routes)", route.Line)
	}
}

func TestFindRouteSharedLineSkipsUnmappedStations(t *testing.T) {
	start := station("start", 40.70, -74.00, "A")
	ghost := models.Station{ID: "ghost", Routes: []string{"A"}}
	end := station("end", 40.72, -74.00, "A")
	rec := NewRecommender([]models.Station{start, ghost, end}, nil)

	route := rec.FindRoute(start, end)
	assertStrategy(t, route, StrategySharedLine)
	assertPath(t, route.Stations, "start", "end")
}

// ---------------------------------------------------------------------------
// Transfer
// ---------------------------------------------------------------------------

func TestFindRouteTransfer(t *testing.T) {
	start := station("start", 40.70, -74.00, "1")
	hub := station("hub", 40.72, -74.00, "1", "L", "A")
	smallHub := station("small-hub", 40.80, -73.90, "1", "L")
	end := station("end", 40.74, -74.00, "L")
	rec := NewRecommender([]models.Station{start, smallHub, hub, end}, nil)

	route := rec.FindRoute(start, end)
	assertStrategy(t, route, StrategyTransfer)
	assertPath(t, route.Stations, "start", "hub", "end")

	if route.Transfer == nil || route.Transfer.ID != "hub" {
		t.Errorf("transfer = %v, want hub", route.Transfer)
	}
}

func TestTransferCandidatesOrdering(t *testing.T) {
	start := station("start", 40.70, -74.00, "1")
	end := station("end", 40.74, -74.00, "L")
	a := station("a", 40.71, -74.00, "1", "L")
	b := station("b", 40.72, -74.00, "1", "L", "A", "C")
	c := station("c", 40.73, -74.00, "L", "1")
	d := station("d", 40.73, -74.01, "1")
	rec := NewRecommender([]models.Station{start, a, b, c, d, end}, nil)

	assertPath(t, rec.transferCandidates(start, end), "b", "a", "c")
}

func TestTransferCandidatesNeedRoutes(t *testing.T) {
	start := station("start", 40.70, -74.00)
	end := station("end", 40.74, -74.00, "L")
	hub := station("hub", 40.72, -74.00, "L")
	rec := NewRecommender([]models.Station{start, hub, end}, nil)

	if got := rec.transferCandidates(start, end); len(got) != 0 {
		t.Errorf("expected no candidates, got %v", stationIDs(got))
	}
}

// ---------------------------------------------------------------------------
// Direct fallback
// ---------------------------------------------------------------------------

func TestFindRouteDirectFallback(t *testing.T) {
	start := station("start", 40.70, -74.00, "1")
	m2 := station("m2", 40.74, -73.999, "Q")
	far := station("far", 40.70, -73.90, "R")
	m1 := station("m1", 40.72, -74.001, "Q")
	end := station("end", 40.76, -74.00, "7")
	rec := NewRecommender([]models.Station{start, m2, far, m1, end}, nil)

	route := rec.FindRoute(start, end)
	assertStrategy(t, route, StrategyDirect)
	assertPath(t, route.Stations, "start", "m1", "m2", "end")
}

func TestDirectRouteCapsMidpoints(t *testing.T) {
	start := station("start", 40.70, -74.00)
	end := station("end", 40.76, -74.00)
	stations := []models.Station{start, end}
	for i := 0; i < 7; i++ {
		// each midpoint sits slightly further off the line than the last
		stations = append(stations, station(fmt.Sprintf("m%d", i), 40.705+float64(i)*0.005, -74.00+float64(i+1)*0.0005))
	}
	rec := NewRecommender(stations, nil)

	route := rec.FindRoute(start, end)
	assertStrategy(t, route, StrategyDirect)

	if len(route.Stations) != MaxMidpoints+2 {
		t.Fatalf("route length = %d, want %d", len(route.Stations), MaxMidpoints+2)
	}
	assertPath(t, route.Stations, "start", "m0", "m1", "m2", "m3", "m4", "end")
}

func TestDirectRouteShortHop(t *testing.T) {
	start := station("start", 40.700, -74.00)
	between := station("between", 40.702, -74.00)
	end := station("end", 40.704, -74.00)
	rec := NewRecommender([]models.Station{start, between, end}, nil)

	route := rec.FindRoute(start, end)
	assertStrategy(t, route, StrategyDirect)
	assertPath(t, route.Stations, "start", "end")
}

// ---------------------------------------------------------------------------
// Degenerate inputs
// ---------------------------------------------------------------------------

func TestFindRouteSameStation(t *testing.T) {
	s := station("S", 40.70, -74.00, "A")
	other := station("T", 40.72, -74.00, "A")
	rec := NewRecommender([]models.Station{s, other}, nil)

	for i := 0; i < 2; i++ {
		route := rec.FindRoute(s, s)
		assertStrategy(t, route, StrategyNone)
		assertPath(t, route.Stations, "S")
		if route.Usable() {
			t.Error("same-station route must not be usable")
		}
	}
}

func TestFindRouteMissingCoordinates(t *testing.T) {
	s := station("S", 40.70, -74.00, "A")
	unmapped := models.Station{ID: "U", Routes: []string{"A"}}
	rec := NewRecommender([]models.Station{s, unmapped}, nil)

	route := rec.FindRoute(s, unmapped)
	assertStrategy(t, route, StrategyNone)
	if len(route.Stations) != 0 {
		t.Errorf("expected empty route, got %v", stationIDs(route.Stations))
	}
}

func TestFindRouteEmptyDataset(t *testing.T) {
	rec := NewRecommender(nil, nil)

	route := rec.FindRoute(station("a", 40.70, -74.00), station("b", 40.75, -74.00))
	assertStrategy(t, route, StrategyNone)
	if len(route.Stations) != 0 {
		t.Errorf("expected empty route, got %v", stationIDs(route.Stations))
	}
}

func TestStrategyString(t *testing.T) {
	tests := []struct {
		strategy Strategy
		want     string
	}{
		{StrategyNone, "none"},
		{StrategySharedLine, "shared_line"},
		{StrategyTransfer, "transfer"},
		{StrategyDirect, "direct"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			text, err := tc.strategy.MarshalText()
			if err != nil {
				t.Fatalf("MarshalText: %v", err)
			}
			if string(text) != tc.want {
				t.Errorf("MarshalText = %q, want %q", text, tc.want)
			}
		})
	}
}
