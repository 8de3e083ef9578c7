package services

import (
	"sort"

	"github.com/dishcovery/api-go/models"
	"github.com/dishcovery/api-go/utils"
)

// DefaultMaxDistanceKm bounds distance-filtered searches when the caller
// gives an origin but no explicit threshold.
const DefaultMaxDistanceKm = 50.0

// Rank attaches distances and orders matched restaurants for presentation.
//
// With no origin the matcher's order is preserved and every distance stays
// absent. With an origin, each restaurant is scored against it, anything
// without a usable distance or beyond maxDistanceKm is dropped, and the rest
// are sorted ascending by distance. The sort is stable so ties keep their
// input order. maxDistanceKm <= 0 selects the default threshold.
func Rank(records []models.Restaurant, origin *models.GeoPoint, maxDistanceKm float64) []models.ScoredResult {
	results := make([]models.ScoredResult, 0, len(records))

	if origin == nil {
		for _, r := range records {
			results = append(results, models.ScoredResult{Restaurant: r})
		}
		return results
	}

	if maxDistanceKm <= 0 {
		maxDistanceKm = DefaultMaxDistanceKm
	}

	for _, r := range records {
		lat, okLat := utils.ParseCoordinate(r.Location.Latitude)
		lon, okLon := utils.ParseCoordinate(r.Location.Longitude)
		if !okLat || !okLon {
			continue
		}

		d := utils.HaversineKm(origin.Latitude, origin.Longitude, lat, lon)
		if d > maxDistanceKm {
			continue
		}
		results = append(results, models.ScoredResult{Restaurant: r, DistanceKm: &d})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return *results[i].DistanceKm < *results[j].DistanceKm
	})
	return results
}
