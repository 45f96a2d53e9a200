package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-cli/internal/httpx"
)

// Nominatim resolves place names through the OpenStreetMap Nominatim search
// API. Nominatim's usage policy requires an identifying User-Agent.
type Nominatim struct {
	name      string
	baseURL   string
	userAgent string
	client    *http.Client
	circuit   *gobreaker.CircuitBreaker
}

func NewNominatim(client *http.Client, baseURL, userAgent string) *Nominatim {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "nominatim",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Nominatim{
		name:      "nominatim",
		baseURL:   baseURL,
		userAgent: userAgent,
		client:    client,
		circuit:   cb,
	}
}

func (s *Nominatim) Name() string {
	return s.name
}

// Resolve returns the best match for a free-text query. The display name is
// the first comma-separated segment of the full address.
func (s *Nominatim) Resolve(ctx context.Context, query string) (Location, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("q", query)
		values.Set("format", "json")
		values.Set("limit", "1")

		u := fmt.Sprintf("%s?%s", s.baseURL, values.Encode())
		req, err := http.NewRequest(http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", s.userAgent)
		return req, nil
	}

	resp, err := httpx.Do(ctx, s.client, s.circuit, buildRequest)
	if err != nil {
		return Location{}, fmt.Errorf("%w: %v", ErrNoMatch, err)
	}
	defer resp.Body.Close()

	var results []struct {
		Lat         string `json:"lat"`
		Lon         string `json:"lon"`
		DisplayName string `json:"display_name"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return Location{}, fmt.Errorf("%w: %v", ErrNoMatch, err)
	}
	if len(results) == 0 {
		return Location{}, ErrNoMatch
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return Location{}, fmt.Errorf("%w: %v", ErrNoMatch, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return Location{}, fmt.Errorf("%w: %v", ErrNoMatch, err)
	}

	loc := Location{Lat: lat, Lon: lon, Name: displayName(results[0].DisplayName)}
	if err := loc.Validate(); err != nil {
		return Location{}, fmt.Errorf("%w: %v", ErrNoMatch, err)
	}

	return loc, nil
}
