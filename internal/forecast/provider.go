package forecast

import (
	"context"
	"errors"
	"time"
)

// ErrDecode marks a response body that could not be parsed into hourly
// observations.
var ErrDecode = errors.New("malformed forecast response")

// Provider abstracts a forecast data source (e.g. Bright Sky).
type Provider interface {
	Name() string
	Hourly(ctx context.Context, lat, lon float64, from, to time.Time) ([]HourlyObservation, error)
}
