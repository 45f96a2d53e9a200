package forecast

import (
	"time"
)

// Condition is a normalized weather condition label as reported by the
// forecast source. Labels outside the known set are carried through as-is;
// they never match an icon and render as clear sky.
type Condition string

const (
	ConditionThunderstorm Condition = "thunderstorm"
	ConditionRain         Condition = "rain"
	ConditionSnow         Condition = "snow"
	ConditionSleet        Condition = "sleet"
	ConditionHail         Condition = "hail"
	ConditionFog          Condition = "fog"
	ConditionCloudy       Condition = "cloudy"
	ConditionDry          Condition = "dry"
)

// HourlyObservation is one hour of forecast data for a location.
// Timestamps are parsed at the ingestion boundary; a missing precipitation
// probability has already been defaulted to 0 by then.
type HourlyObservation struct {
	Timestamp         time.Time
	Temperature       float64 // degrees Celsius
	PrecipProbability float64 // percent, in [0,100]
	Condition         Condition
}

// HourEntry is a single row of the hourly breakdown for the current day.
type HourEntry struct {
	Label             string // hour:minute display label
	Temperature       float64
	PrecipProbability float64
	Condition         Condition
}

// DaySummary is the per-day rollup of hourly observations. Conditions holds
// the distinct non-dry labels seen that day, in first-seen order. Hours is
// populated only for the day matching "today".
type DaySummary struct {
	Date       time.Time
	High       float64
	Low        float64
	MaxPrecip  float64
	Conditions []Condition
	Hours      []HourEntry
}

// DayKey returns the calendar-date grouping key for a timestamp, rendered in
// the timestamp's own zone.
func DayKey(ts time.Time) string {
	return ts.Format("2006-01-02")
}
