package services

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidQuery means the caller supplied no cuisine text to search by.
	ErrInvalidQuery = errors.New("cuisine query parameter is required")

	// ErrNotFound covers both a missing restaurant id and an empty result set
	// after filtering. Use errors.Is against this; the concrete value may be a
	// *NotFoundError carrying the distance context.
	ErrNotFound = errors.New("restaurant not found")

	// ErrClassificationFailed means the image classifier exhausted its retry
	// budget. The wrapped cause is the last attempt's error.
	ErrClassificationFailed = errors.New("image classification failed")

	// ErrUpstreamUnavailable means the backing store could not be queried.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// NotFoundError is an empty-result outcome that remembers whether a distance
// filter was in play, so the caller can tell "no restaurants for this
// cuisine" apart from "none within range".
type NotFoundError struct {
	DistanceFiltered bool
	MaxDistanceKm    float64
}

func (e *NotFoundError) Error() string {
	if e.DistanceFiltered {
		return fmt.Sprintf("no restaurants found within %gkm of your location", e.MaxDistanceKm)
	}
	return "no restaurants found for the given cuisine"
}

// Message is the user-facing wording the HTTP layer returns for a 404.
func (e *NotFoundError) Message() string {
	if e.DistanceFiltered {
		return fmt.Sprintf("No restaurants found within %gkm of your location", e.MaxDistanceKm)
	}
	return "No restaurants found for the given cuisine"
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
