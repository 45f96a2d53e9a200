package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/i474232898/weather-cli/internal/forecast"
)

const (
	cardHeader = "                 Temp             Rain"
	hourHeader = "Time         Temp   Rain"
	labelWidth = 10
	ruleWidth  = 38
)

// Renderer writes the forecast report to a writer. With colors disabled the
// same text is produced with every escape sequence empty.
type Renderer struct {
	w      io.Writer
	colors bool
}

func New(w io.Writer, colors bool) *Renderer {
	return &Renderer{w: w, colors: colors}
}

func (r *Renderer) paint(code string) string {
	if !r.colors {
		return ""
	}
	return code
}

// Report writes the title, one card per day summary in the given order, and,
// when today has hourly entries, the hourly breakdown. Percentages use fmt's
// %.0f, which rounds half to even.
func (r *Renderer) Report(title string, days []forecast.DaySummary, today time.Time) {
	bold := r.paint(escBold)
	dim := r.paint(escDim)
	cyan := r.paint(escCyan)
	reset := r.paint(escReset)
	rule := strings.Repeat("─", ruleWidth)

	fmt.Fprintf(r.w, "\n  %s%s%s%s\n", bold, cyan, title, reset)
	fmt.Fprintf(r.w, "  %s%s%s\n", dim, cardHeader, reset)
	fmt.Fprintf(r.w, "  %s%s%s\n", dim, rule, reset)

	todayKey := forecast.DayKey(today)

	for i := range days {
		day := &days[i]

		var label string
		if forecast.DayKey(day.Date) == todayKey {
			label = bold + runewidth.FillRight("Today", labelWidth) + reset
		} else {
			label = runewidth.FillRight(day.Date.Format("Mon 02.01."), labelWidth)
		}

		fmt.Fprintf(r.w, "  %s %s  %s%5.1f°%s  …  %s%5.1f°%s  %s%3.0f%%%s\n",
			label, pickIcon(day.Conditions),
			r.paint(tempColor(day.Low)), day.Low, reset,
			r.paint(tempColor(day.High)), day.High, reset,
			r.paint(precipColor(day.MaxPrecip)), day.MaxPrecip, reset)
	}

	for i := range days {
		day := &days[i]
		if forecast.DayKey(day.Date) != todayKey || len(day.Hours) == 0 {
			continue
		}

		fmt.Fprintln(r.w)
		fmt.Fprintf(r.w, "  %s%s%s\n", dim, hourHeader, reset)
		fmt.Fprintf(r.w, "  %s%s%s\n", dim, rule, reset)

		for _, h := range day.Hours {
			fmt.Fprintf(r.w, "  %s  %s  %s%5.1f°%s  %s%3.0f%%%s\n",
				h.Label, icon(h.Condition),
				r.paint(tempColor(h.Temperature)), h.Temperature, reset,
				r.paint(precipColor(h.PrecipProbability)), h.PrecipProbability, reset)
		}
		break
	}

	fmt.Fprintln(r.w)
}
