package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	// HTTPTimeout bounds each outbound call.
	HTTPTimeout time.Duration

	// ForecastDays is how far past "now" the fetch window extends.
	ForecastDays int

	// Outbound endpoints and the identifying User-Agent Nominatim requires.
	NominatimBaseURL string
	BrightSkyBaseURL string
	UserAgent        string

	// GoogleAPIKey switches geocoding to the Google backend when set.
	GoogleAPIKey string

	// Fixed coordinates skip geocoding (and the city prompt) entirely.
	// Both must be set together.
	StaticLat   *float64
	StaticLon   *float64
	StaticLabel string

	// NoColor disables ANSI escapes regardless of terminal detection.
	NoColor bool
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.ForecastDays = getenvInt("FORECAST_DAYS", 3)
	if cfg.ForecastDays <= 0 {
		return nil, fmt.Errorf("FORECAST_DAYS must be positive")
	}

	cfg.NominatimBaseURL = getenvDefault("NOMINATIM_URL", "https://nominatim.openstreetmap.org/search")
	cfg.BrightSkyBaseURL = getenvDefault("BRIGHTSKY_URL", "https://api.brightsky.dev/weather")
	cfg.UserAgent = getenvDefault("USER_AGENT", "weather-cli")
	cfg.GoogleAPIKey = os.Getenv("GOOGLE_API_KEY")
	cfg.StaticLabel = os.Getenv("WEATHER_LABEL")
	cfg.NoColor = os.Getenv("NO_COLOR") != ""

	lat, lon, err := loadStaticCoordinates()
	if err != nil {
		return nil, err
	}
	cfg.StaticLat = lat
	cfg.StaticLon = lon

	return cfg, nil
}

func loadStaticCoordinates() (*float64, *float64, error) {
	latStr := os.Getenv("WEATHER_LAT")
	lonStr := os.Getenv("WEATHER_LON")

	if latStr == "" && lonStr == "" {
		return nil, nil, nil
	}
	if latStr == "" || lonStr == "" {
		return nil, nil, fmt.Errorf("WEATHER_LAT and WEATHER_LON must be set together")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid WEATHER_LAT: %w", err)
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid WEATHER_LON: %w", err)
	}

	return &lat, &lon, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
