package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-cli/internal/forecast"
)

const sampleBody = `{
	"weather": [
		{
			"timestamp": "2024-05-14T00:00:00+02:00",
			"temperature": -2.0,
			"precipitation_probability": null,
			"condition": "dry"
		},
		{
			"timestamp": "2024-05-14T12:00:00+02:00",
			"temperature": 5.0,
			"precipitation_probability": 80,
			"condition": "rain"
		}
	]
}`

func window(t *testing.T) (time.Time, time.Time) {
	t.Helper()
	from, err := time.Parse("2006-01-02T15:04", "2024-05-14T09:00")
	require.NoError(t, err)
	return from, from.AddDate(0, 0, 3)
}

func TestBrightSkyHourly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "52.520000", q.Get("lat"))
		assert.Equal(t, "13.400000", q.Get("lon"))
		assert.Equal(t, "2024-05-14T09:00", q.Get("date"))
		assert.Equal(t, "2024-05-17T09:00", q.Get("last_date"))

		w.Write([]byte(sampleBody))
	}))
	defer srv.Close()

	p := NewBrightSkyProvider(srv.Client(), srv.URL)
	from, to := window(t)

	obs, err := p.Hourly(context.Background(), 52.52, 13.4, from, to)
	require.NoError(t, err)
	require.Len(t, obs, 2)

	assert.Equal(t, -2.0, obs[0].Temperature)
	assert.Equal(t, 0.0, obs[0].PrecipProbability) // null defaults to 0
	assert.Equal(t, forecast.ConditionDry, obs[0].Condition)
	assert.Equal(t, "2024-05-14", forecast.DayKey(obs[0].Timestamp))
	assert.Equal(t, "00:00", obs[0].Timestamp.Format("15:04"))

	assert.Equal(t, 5.0, obs[1].Temperature)
	assert.Equal(t, 80.0, obs[1].PrecipProbability)
	assert.Equal(t, forecast.ConditionRain, obs[1].Condition)
	assert.Equal(t, "12:00", obs[1].Timestamp.Format("15:04"))
}

func TestBrightSkyHourlyDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"weather": [`))
	}))
	defer srv.Close()

	p := NewBrightSkyProvider(srv.Client(), srv.URL)
	from, to := window(t)

	_, err := p.Hourly(context.Background(), 52.52, 13.4, from, to)
	assert.ErrorIs(t, err, forecast.ErrDecode)
}

func TestBrightSkyHourlyBadTimestamp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"weather": [{"timestamp": "14.05.2024 12:00", "temperature": 5.0, "condition": "dry"}]}`))
	}))
	defer srv.Close()

	p := NewBrightSkyProvider(srv.Client(), srv.URL)
	from, to := window(t)

	_, err := p.Hourly(context.Background(), 52.52, 13.4, from, to)
	assert.ErrorIs(t, err, forecast.ErrDecode)
}

func TestBrightSkyHourlyServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := NewBrightSkyProvider(srv.Client(), srv.URL)
	from, to := window(t)

	_, err := p.Hourly(context.Background(), 52.52, 13.4, from, to)
	require.Error(t, err)
	assert.NotErrorIs(t, err, forecast.ErrDecode)
}
