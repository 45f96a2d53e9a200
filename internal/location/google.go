package location

import (
	"context"
	"fmt"

	"github.com/kelvins/geocoder"
)

// Google resolves place names through the Google Geocoding API. The geocoder
// package keeps its API key in package state, so construct at most one of
// these per process. The display name is derived from the query itself; the
// forward-geocoding call returns coordinates only.
type Google struct {
	name string
}

func NewGoogle(apiKey string) *Google {
	geocoder.ApiKey = apiKey
	return &Google{name: "google"}
}

func (s *Google) Name() string {
	return s.name
}

func (s *Google) Resolve(_ context.Context, query string) (Location, error) {
	result, err := geocoder.Geocoding(geocoder.Address{Street: query})
	if err != nil {
		return Location{}, fmt.Errorf("%w: %v", ErrNoMatch, err)
	}

	loc := Location{Lat: result.Latitude, Lon: result.Longitude, Name: displayName(query)}
	if err := loc.Validate(); err != nil {
		return Location{}, fmt.Errorf("%w: %v", ErrNoMatch, err)
	}

	return loc, nil
}
