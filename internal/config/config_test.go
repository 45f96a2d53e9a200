package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HTTP_TIMEOUT", "FORECAST_DAYS", "NOMINATIM_URL", "BRIGHTSKY_URL",
		"USER_AGENT", "GOOGLE_API_KEY", "WEATHER_LAT", "WEATHER_LON",
		"WEATHER_LABEL", "NO_COLOR",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 3, cfg.ForecastDays)
	assert.Equal(t, "https://nominatim.openstreetmap.org/search", cfg.NominatimBaseURL)
	assert.Equal(t, "https://api.brightsky.dev/weather", cfg.BrightSkyBaseURL)
	assert.Equal(t, "weather-cli", cfg.UserAgent)
	assert.Nil(t, cfg.StaticLat)
	assert.Nil(t, cfg.StaticLon)
	assert.False(t, cfg.NoColor)
}

func TestLoadStaticCoordinates(t *testing.T) {
	clearEnv(t)
	t.Setenv("WEATHER_LAT", "48.2083")
	t.Setenv("WEATHER_LON", "16.3725")
	t.Setenv("WEATHER_LABEL", "Vienna")

	cfg, err := Load()
	require.NoError(t, err)

	require.NotNil(t, cfg.StaticLat)
	require.NotNil(t, cfg.StaticLon)
	assert.Equal(t, 48.2083, *cfg.StaticLat)
	assert.Equal(t, 16.3725, *cfg.StaticLon)
	assert.Equal(t, "Vienna", cfg.StaticLabel)
}

func TestLoadStaticCoordinatesMustPair(t *testing.T) {
	clearEnv(t)
	t.Setenv("WEATHER_LAT", "48.2083")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadInvalidTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_TIMEOUT", "soon")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadInvalidForecastDays(t *testing.T) {
	clearEnv(t)
	t.Setenv("FORECAST_DAYS", "0")

	_, err := Load()
	assert.Error(t, err)
}
