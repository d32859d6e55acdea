package location

import (
	"math"

	"github.com/randytsao24/subwayfood/internal/models"
)

const earthRadiusKm = 6371

// Haversine calculates the great-circle distance in kilometers between two lat/lng points
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// Distance returns the haversine distance in kilometers between two points
func Distance(a, b models.Coordinates) float64 {
	return Haversine(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
}

// DistanceToSegment returns the planar distance, in degrees, from p to the
// segment a-b. The projection parameter is clamped to [0,1]; a degenerate
// segment measures the distance to a.
func DistanceToSegment(p, a, b models.Coordinates) float64 {
	dx := b.Latitude - a.Latitude
	dy := b.Longitude - a.Longitude

	param := -1.0
	if lenSq := dx*dx + dy*dy; lenSq != 0 {
		param = ((p.Latitude-a.Latitude)*dx + (p.Longitude-a.Longitude)*dy) / lenSq
	}

	var x, y float64
	switch {
	case param < 0:
		x, y = a.Latitude, a.Longitude
	case param > 1:
		x, y = b.Latitude, b.Longitude
	default:
		x, y = a.Latitude+param*dx, a.Longitude+param*dy
	}

	return math.Hypot(p.Latitude-x, p.Longitude-y)
}

// IsBetween reports whether p lies near the path from a to b, allowing the
// detour through p to be up to tolerance times the direct distance.
func IsBetween(p, a, b models.Coordinates, tolerance float64) bool {
	return Distance(p, a)+Distance(p, b) < Distance(a, b)*tolerance
}
