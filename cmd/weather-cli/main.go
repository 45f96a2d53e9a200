package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/i474232898/weather-cli/internal/config"
	"github.com/i474232898/weather-cli/internal/forecast"
	"github.com/i474232898/weather-cli/internal/forecast/providers"
	"github.com/i474232898/weather-cli/internal/location"
	"github.com/i474232898/weather-cli/internal/render"
)

// Exit codes per failure class. Nothing is retried; the first failure ends
// the run with a one-line diagnostic on stderr.
const (
	exitOK        = 0
	exitNoMatch   = 1
	exitTransport = 2
	exitDecode    = 3
	exitConfig    = 4
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return exitConfig
	}

	// Shared HTTP client for outbound calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// Location source: fixed coordinates when configured, otherwise geocode
	// the city named on the command line (or prompted for).
	var (
		src   location.Source
		query string
	)
	if cfg.StaticLat != nil && cfg.StaticLon != nil {
		static, err := location.NewStatic(*cfg.StaticLat, *cfg.StaticLon, cfg.StaticLabel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			return exitConfig
		}
		src = static
	} else {
		query = strings.Join(os.Args[1:], " ")
		if query == "" {
			query = promptCity()
		}

		if cfg.GoogleAPIKey != "" {
			src = location.NewGoogle(cfg.GoogleAPIKey)
		} else {
			src = location.NewNominatim(httpClient, cfg.NominatimBaseURL, cfg.UserAgent)
		}
	}

	ctx := context.Background()

	loc, err := src.Resolve(ctx, query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not find city: %s\n", query)
		return exitNoMatch
	}

	// Hourly window: current local hour through ForecastDays days ahead.
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), 0, 0, 0, now.Location())
	to := from.AddDate(0, 0, cfg.ForecastDays)

	provider := providers.NewBrightSkyProvider(httpClient, cfg.BrightSkyBaseURL)

	observations, err := provider.Hourly(ctx, loc.Lat, loc.Lon, from, to)
	if err != nil {
		if errors.Is(err, forecast.ErrDecode) {
			fmt.Fprintf(os.Stderr, "JSON error: %v\n", err)
			return exitDecode
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitTransport
	}

	days := forecast.Aggregate(observations, now)

	out := colorable.NewColorableStdout()
	colors := !cfg.NoColor &&
		(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
	render.New(out, colors).Report(loc.Name, days, now)

	return exitOK
}

func promptCity() string {
	fmt.Fprint(os.Stderr, "City: ")
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	return strings.TrimSpace(line)
}
