package models

import "testing"

func TestParseGeoPoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		lat, lon string
		want     *GeoPoint
	}{
		{"valid pair", "40.7128", "-74.0060", &GeoPoint{Latitude: 40.7128, Longitude: -74.0060}},
		{"missing latitude", "", "-74.0060", nil},
		{"missing longitude", "40.7128", "", nil},
		{"non-numeric latitude", "uptown", "-74.0060", nil},
		{"non-numeric longitude", "40.7128", "west", nil},
		{"infinite longitude", "40.7128", "Inf", nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ParseGeoPoint(tt.lat, tt.lon)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("ParseGeoPoint(%q, %q) = %v, want %v", tt.lat, tt.lon, got, tt.want)
			}
			if got != nil && (got.Latitude != tt.want.Latitude || got.Longitude != tt.want.Longitude) {
				t.Errorf("ParseGeoPoint(%q, %q) = %+v, want %+v", tt.lat, tt.lon, got, tt.want)
			}
		})
	}
}
