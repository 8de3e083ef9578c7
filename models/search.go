package models

import (
	"math"
	"strconv"
)

// GeoPoint is a caller-supplied search origin in decimal degrees. It is
// transient, built per request and never stored.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ParseGeoPoint builds a GeoPoint from raw coordinate strings. Missing or
// non-numeric input yields nil, which callers treat as "no origin" rather
// than an error.
func ParseGeoPoint(latitude, longitude string) *GeoPoint {
	if latitude == "" || longitude == "" {
		return nil
	}

	lat, err := strconv.ParseFloat(latitude, 64)
	if err != nil || math.IsNaN(lat) || math.IsInf(lat, 0) {
		return nil
	}

	lon, err := strconv.ParseFloat(longitude, 64)
	if err != nil || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return nil
	}

	return &GeoPoint{Latitude: lat, Longitude: lon}
}

// ScoredResult is a restaurant plus its computed distance from the search
// origin. DistanceKm is nil when either side of the pair had no usable
// coordinates.
type ScoredResult struct {
	Restaurant `bson:",inline"`
	DistanceKm *float64 `json:"distance"`
}

// PageResult is one page of scored results in the wire format the search
// endpoint returns.
type PageResult struct {
	TotalResults int            `json:"total_results"`
	CurrentPage  int            `json:"current_page"`
	TotalPages   int            `json:"total_pages"`
	Items        []ScoredResult `json:"data"`
}
