package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-cli/internal/forecast"
	"github.com/i474232898/weather-cli/internal/httpx"
)

// hourParam is the hour-granularity local-time layout Bright Sky accepts for
// the date and last_date query parameters.
const hourParam = "2006-01-02T15:04"

// BrightSkyProvider implements the forecast.Provider interface for Bright Sky
// (https://brightsky.dev). No API key is required.
type BrightSkyProvider struct {
	name    string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewBrightSkyProvider(client *http.Client, baseURL string) *BrightSkyProvider {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "brightsky",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &BrightSkyProvider{
		name:    "brightsky",
		baseURL: baseURL,
		client:  client,
		circuit: cb,
	}
}

func (p *BrightSkyProvider) Name() string {
	return p.name
}

// Hourly fetches hourly observations for the coordinate over [from, to].
// Timestamps are parsed here, once; a timestamp the source emits in a shape
// we cannot parse is a decode failure, not bad data to limp along with.
func (p *BrightSkyProvider) Hourly(ctx context.Context, lat, lon float64, from, to time.Time) ([]forecast.HourlyObservation, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("lat", fmt.Sprintf("%f", lat))
		values.Set("lon", fmt.Sprintf("%f", lon))
		values.Set("date", from.Format(hourParam))
		values.Set("last_date", to.Format(hourParam))

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		req, err := http.NewRequest(http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		return req, nil
	}

	resp, err := httpx.Do(ctx, p.client, p.circuit, buildRequest)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload struct {
		Weather []struct {
			Timestamp         string   `json:"timestamp"`
			Temperature       float64  `json:"temperature"`
			PrecipProbability *float64 `json:"precipitation_probability"`
			Condition         string   `json:"condition"`
		} `json:"weather"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", forecast.ErrDecode, err)
	}

	observations := make([]forecast.HourlyObservation, 0, len(payload.Weather))
	for _, entry := range payload.Weather {
		ts, err := time.Parse(time.RFC3339, entry.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("%w: bad timestamp %q: %v", forecast.ErrDecode, entry.Timestamp, err)
		}

		// A null probability means the source has no estimate; treat as 0.
		var precip float64
		if entry.PrecipProbability != nil {
			precip = *entry.PrecipProbability
		}

		observations = append(observations, forecast.HourlyObservation{
			Timestamp:         ts,
			Temperature:       entry.Temperature,
			PrecipProbability: precip,
			Condition:         forecast.Condition(entry.Condition),
		})
	}

	return observations, nil
}
