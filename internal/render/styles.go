package render

import "github.com/i474232898/weather-cli/internal/forecast"

// ANSI escape codes used by the report.
const (
	escBold   = "\x1b[1m"
	escDim    = "\x1b[2m"
	escCyan   = "\x1b[36m"
	escBlue   = "\x1b[34m"
	escGreen  = "\x1b[32m"
	escYellow = "\x1b[33m"
	escRed    = "\x1b[31m"
	escReset  = "\x1b[0m"
)

// tempColor buckets a temperature (°C) into its display color. Boundaries
// are inclusive below and exclusive above, except the open-ended hot bucket.
func tempColor(t float64) string {
	switch {
	case t < 0:
		return escBlue
	case t < 10:
		return escCyan
	case t < 20:
		return escGreen
	case t < 30:
		return escYellow
	default:
		return escRed
	}
}

// precipColor buckets a precipitation probability (percent).
func precipColor(p float64) string {
	switch {
	case p >= 70:
		return escRed
	case p >= 40:
		return escYellow
	default:
		return escDim
	}
}

// iconPriority orders conditions for the day card. The first entry present
// in a day's condition set wins, so a thunderstorm always visually dominates
// plain rain or clouds on a mixed day.
var iconPriority = []forecast.Condition{
	forecast.ConditionThunderstorm,
	forecast.ConditionRain,
	forecast.ConditionSnow,
	forecast.ConditionSleet,
	forecast.ConditionHail,
	forecast.ConditionFog,
	forecast.ConditionCloudy,
}

// icon maps a condition to its glyph. Anything outside the known set,
// including "dry", renders as clear sky.
func icon(cond forecast.Condition) string {
	switch cond {
	case forecast.ConditionThunderstorm:
		return "⛈️"
	case forecast.ConditionRain:
		return "🌧️"
	case forecast.ConditionSnow:
		return "❄️"
	case forecast.ConditionSleet:
		return "🌨️"
	case forecast.ConditionHail:
		return "🧊"
	case forecast.ConditionFog:
		return "🌫️"
	case forecast.ConditionCloudy:
		return "☁️"
	default:
		return "☀️"
	}
}

// pickIcon selects the day-card icon by first-match priority over the day's
// distinct conditions.
func pickIcon(conds []forecast.Condition) string {
	for _, want := range iconPriority {
		for _, have := range conds {
			if have == want {
				return icon(want)
			}
		}
	}
	return icon(forecast.ConditionDry)
}
