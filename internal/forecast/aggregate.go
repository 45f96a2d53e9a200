package forecast

import (
	"math"
	"time"
)

// Aggregate rolls a time-ordered observation sequence up into one summary per
// calendar day. Days appear in first-seen order; the input is not re-sorted.
// Hourly entries are kept only for the day matching today, in append order.
// Pure over its inputs; an empty input produces an empty result.
func Aggregate(observations []HourlyObservation, today time.Time) []DaySummary {
	var days []DaySummary
	index := make(map[string]int)
	todayKey := DayKey(today)

	for _, obs := range observations {
		key := DayKey(obs.Timestamp)

		i, ok := index[key]
		if !ok {
			days = append(days, DaySummary{
				Date: obs.Timestamp,
				High: math.Inf(-1),
				Low:  math.Inf(1),
			})
			i = len(days) - 1
			index[key] = i
		}
		day := &days[i]

		if obs.Temperature > day.High {
			day.High = obs.Temperature
		}
		if obs.Temperature < day.Low {
			day.Low = obs.Temperature
		}
		if obs.PrecipProbability > day.MaxPrecip {
			day.MaxPrecip = obs.PrecipProbability
		}
		if obs.Condition != ConditionDry && !hasCondition(day.Conditions, obs.Condition) {
			day.Conditions = append(day.Conditions, obs.Condition)
		}
		if key == todayKey {
			day.Hours = append(day.Hours, HourEntry{
				Label:             obs.Timestamp.Format("15:04"),
				Temperature:       obs.Temperature,
				PrecipProbability: obs.PrecipProbability,
				Condition:         obs.Condition,
			})
		}
	}

	return days
}

func hasCondition(conds []Condition, c Condition) bool {
	for _, have := range conds {
		if have == c {
			return true
		}
	}
	return false
}
