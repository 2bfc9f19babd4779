package geo

import "math"

const earthRadiusKm = 6371.0

type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// DistanceKm returns the great-circle distance between two coordinates in
// kilometers using the Haversine formula. NaN inputs propagate as NaN;
// callers deal with missing coordinates before getting here.
func DistanceKm(a, b Coordinate) float64 {
	lat1 := radians(a.Latitude)
	lat2 := radians(b.Latitude)
	dLat := radians(b.Latitude - a.Latitude)
	dLon := radians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
