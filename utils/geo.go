package utils

import (
	"math"
	"strconv"
)

const earthRadiusKm = 6371.0

// ParseCoordinate parses a decimal-degree string. The second return is false
// when the input is not a finite number.
func ParseCoordinate(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Distance returns the great-circle distance in kilometers between two
// coordinate pairs given as decimal-degree strings. When any of the four
// values fails to parse as a finite number the distance is absent (ok is
// false); callers must skip distance-based filtering and sorting for that
// pair instead of treating it as zero.
//
// Distance is the composed form of ParseCoordinate and HaversineKm. Callers
// that already hold one side as parsed floats, like the result ranker, use
// those primitives directly and get the same absent-on-invalid semantics.
func Distance(lat1, lon1, lat2, lon2 string) (float64, bool) {
	aLat, ok := ParseCoordinate(lat1)
	if !ok {
		return 0, false
	}
	aLon, ok := ParseCoordinate(lon1)
	if !ok {
		return 0, false
	}
	bLat, ok := ParseCoordinate(lat2)
	if !ok {
		return 0, false
	}
	bLon, ok := ParseCoordinate(lon2)
	if !ok {
		return 0, false
	}
	return HaversineKm(aLat, aLon, bLat, bLon), true
}

// HaversineKm computes the haversine great-circle distance in kilometers
// between two points in decimal degrees. No geodesic correction is applied;
// the spherical approximation is fine at city and country scale.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180.0)*math.Cos(lat2*math.Pi/180.0)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}
