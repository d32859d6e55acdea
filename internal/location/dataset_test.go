package location

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/randytsao24/subwayfood/internal/models"
)

func dataDir(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("runtime.Caller failed")
	}
	return filepath.Join(filepath.Dir(file), "../../data")
}

func loadFixtures(t *testing.T) *Dataset {
	t.Helper()
	ds, err := LoadDataset(dataDir(t))
	if err != nil {
		t.Fatalf("load dataset: %v", err)
	}
	return ds
}

func TestLoadDataset(t *testing.T) {
	ds := loadFixtures(t)

	if !ds.Stations.IsLoaded() || !ds.Restaurants.IsLoaded() || !ds.Lines.IsLoaded() {
		t.Fatal("expected all services to report loaded")
	}
	if got := ds.Stations.Count(); got != 12 {
		t.Errorf("stations = %d, want 12", got)
	}
	if got := ds.Restaurants.Count(); got != 17 {
		t.Errorf("restaurants = %d, want 17", got)
	}
	if got := ds.Lines.Count(); got != 18 {
		t.Errorf("lines = %d, want 18", got)
	}
}

func TestLoadDatasetMissingDir(t *testing.T) {
	if _, err := LoadDataset(t.TempDir()); err == nil {
		t.Fatal("expected error for empty data directory")
	}
}

func TestStationLoadRejectsEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), StationsFile)
	if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := NewStationService().Load(path); err == nil {
		t.Fatal("expected error for station file without records")
	}
}

func writeDataFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestStationLoadSkipsMalformedRecords(t *testing.T) {
	path := writeDataFile(t, StationsFile, `[
		{"id": 1, "name": "A", "coordinates": {"latitude": 40.7, "longitude": -74.0}, "routes": ["A"]},
		{"id": 2, "name": "B", "routes": "A"},
		{"id": {"bad": true}, "name": "C"},
		{"id": 4, "name": "D", "coordinates": "somewhere"}
	]`)

	svc := NewStationService()
	if err := svc.Load(path); err != nil {
		t.Fatalf("load: %v", err)
	}

	if got := svc.Count(); got != 2 {
		t.Fatalf("stations = %d, want 2", got)
	}
	a, ok := svc.GetByID("1")
	if !ok || len(a.Routes) != 1 || a.Routes[0] != "A" {
		t.Errorf("station 1 = %+v, want routes [A]", a)
	}
	b, ok := svc.GetByID("2")
	if !ok || b.Routes == nil || len(b.Routes) != 0 {
		t.Errorf("station 2 = %+v, want empty routes", b)
	}
}

func TestStationLoadRejectsNonArray(t *testing.T) {
	path := writeDataFile(t, StationsFile, `{"stations": []}`)
	if err := NewStationService().Load(path); err == nil {
		t.Fatal("expected error for a document that is not an array")
	}
}

func TestStationLoadRejectsOnlyMalformedRecords(t *testing.T) {
	path := writeDataFile(t, StationsFile, `[{"id": [1]}, "station"]`)
	if err := NewStationService().Load(path); err == nil {
		t.Fatal("expected error when no record decodes")
	}
}

func TestRestaurantLoadSkipsMalformedRecords(t *testing.T) {
	path := writeDataFile(t, RestaurantsFile, `[
		{"id": "r1", "name": "Good", "priceLevel": 2, "rating": {"value": 4.2}, "nearestStation": {"id": 1}},
		{"id": "r2", "name": "Dollars", "priceLevel": "$$", "nearestStation": {"id": 1}},
		{"id": "r3", "name": "Broken", "cuisine": "Thai"},
		42
	]`)

	svc := NewRestaurantService()
	if err := svc.Load(path); err != nil {
		t.Fatalf("load: %v", err)
	}

	if got := svc.Count(); got != 2 {
		t.Fatalf("restaurants = %d, want 2", got)
	}
	near := svc.NearStation("1", RestaurantFilter{PriceLevel: 2})
	if len(near) != 2 {
		t.Errorf("price 2 near station 1 = %d, want 2", len(near))
	}
}

func TestStationIDsAcceptNumbersAndStrings(t *testing.T) {
	var stations []models.Station
	raw := `[{"id": 42, "name": "numeric"}, {"id": "R16", "name": "string"}]`
	if err := json.Unmarshal([]byte(raw), &stations); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	svc := NewStationService()
	svc.Set(stations)

	for _, id := range []models.ID{"42", "R16"} {
		station, ok := svc.GetByID(id)
		if !ok {
			t.Errorf("station %q not found", id)
			continue
		}
		if station.Routes == nil {
			t.Errorf("station %q routes should default to empty, got nil", id)
		}
	}
}

func TestStationGetByID(t *testing.T) {
	ds := loadFixtures(t)

	station, ok := ds.Stations.GetByID("8")
	if !ok {
		t.Fatal("station 8 not found")
	}
	if station.Name != "Bedford Av" {
		t.Errorf("name = %q, want Bedford Av", station.Name)
	}

	if _, ok := ds.Stations.GetByID("999"); ok {
		t.Error("unknown station should not be found")
	}
}

func TestStationsByLine(t *testing.T) {
	ds := loadFixtures(t)

	var ids []models.ID
	for _, s := range ds.Stations.ByLine("L") {
		ids = append(ids, s.ID)
	}

	want := []models.ID{"7", "8", "9"}
	if len(ids) != len(want) {
		t.Fatalf("L stations = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("L stations = %v, want %v", ids, want)
			break
		}
	}
}

func TestSelectableStations(t *testing.T) {
	ds := loadFixtures(t)

	selectable := ds.Stations.Selectable()
	if len(selectable) != 10 {
		t.Fatalf("selectable = %d, want 10 (one 14 St, no unmapped)", len(selectable))
	}

	for i := 1; i < len(selectable); i++ {
		if selectable[i-1].Name > selectable[i].Name {
			t.Errorf("not sorted by name: %q before %q", selectable[i-1].Name, selectable[i].Name)
		}
	}

	first := selectable[0]
	if first.Name != "14 St" || first.ID != "3" {
		t.Errorf("first = %s (%s), want 14 St (3) chosen by ridership", first.Name, first.ID)
	}

	for _, s := range selectable {
		if !s.HasCoordinates() {
			t.Errorf("station %s has no coordinates", s.ID)
		}
	}
}

func TestSelectablePrefersMoreRoutes(t *testing.T) {
	svc := NewStationService()
	coords := &models.Coordinates{Latitude: 40.7, Longitude: -74.0}
	svc.Set([]models.Station{
		{ID: "busy", Name: "Canal St", Coordinates: coords, Routes: []string{"J"}, Ridership: 9000000},
		{ID: "hub", Name: "Canal St", Coordinates: coords, Routes: []string{"N", "Q", "R", "W"}, Ridership: 100},
	})

	got := svc.Selectable()
	if len(got) != 1 || got[0].ID != "hub" {
		t.Errorf("selectable = %v, want only hub", got)
	}
}

func TestBoroughs(t *testing.T) {
	ds := loadFixtures(t)

	got := ds.Stations.Boroughs()
	want := []string{"Manhattan", "Brooklyn", "Queens"}
	if len(got) != len(want) {
		t.Fatalf("boroughs = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("boroughs = %v, want %v", got, want)
		}
	}
}

func TestRestaurantsNearStation(t *testing.T) {
	ds := loadFixtures(t)

	tests := []struct {
		name   string
		filter RestaurantFilter
		want   []models.ID
	}{
		{"no filter", RestaurantFilter{}, []models.ID{"r1", "r2", "r3"}},
		{"cuisine", RestaurantFilter{Cuisine: "Italian"}, []models.ID{"r1"}},
		{"price", RestaurantFilter{PriceLevel: 1}, []models.ID{"r2"}},
		{"cuisine and price", RestaurantFilter{Cuisine: "Italian", PriceLevel: 1}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ds.Restaurants.NearStation("1", tc.filter)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d restaurants, want %d", len(got), len(tc.want))
			}
			for i := range tc.want {
				if got[i].ID != tc.want[i] {
					t.Errorf("restaurant[%d] = %s, want %s", i, got[i].ID, tc.want[i])
				}
			}
		})
	}
}

func TestRestaurantCuisines(t *testing.T) {
	ds := loadFixtures(t)

	if got := len(ds.Restaurants.Cuisines()); got != 10 {
		t.Errorf("cuisines = %d, want 10", got)
	}
}

func TestLineColor(t *testing.T) {
	ds := loadFixtures(t)

	if got := ds.Lines.Color("L"); got != "#A7A9AC" {
		t.Errorf("L color = %q, want #A7A9AC", got)
	}
	if got := ds.Lines.Color("Z"); got != "" {
		t.Errorf("unknown line color = %q, want empty", got)
	}

	line, ok := ds.Lines.Get("7")
	if !ok || len(line.Coordinates) != 3 {
		t.Errorf("line 7 = %+v, want 3 polyline points", line)
	}
}
