package services

import (
	"fmt"
	"math"
	"strings"
	"travel-planner-service/internal/domain"
)

// Read-only formatting accessors consumed by the presentation layer.
// The core supplies display text; it never owns rendering decisions.

// FormatCurrency renders a USD amount rounded to whole dollars with
// thousands grouping, e.g. "$1,235".
func FormatCurrency(amount float64) string {
	n := int64(math.Round(amount))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := fmt.Sprintf("%d", n)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return sign + "$" + b.String()
}

// FormatDuration renders fractional hours as "8h", "7h 30m" or "45m".
func FormatDuration(hours float64) string {
	total := int(math.Round(hours * 60))
	h, m := total/60, total%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}

// FormatCarbon renders an emissions estimate, e.g. "~412 kg CO2".
func FormatCarbon(kg float64) string {
	return fmt.Sprintf("~%.0f kg CO2", kg)
}

// FormatStopTiming renders a stop's derived window, e.g. "09:00 - 11:00".
func FormatStopTiming(stop domain.Stop) string {
	return FormatClock(stop.ArriveMin) + " - " + FormatClock(stop.DepartMin)
}

// ExplainEditImpact returns the one-line status message for an edit
// kind ("swap" | "remove" | "duration").
func ExplainEditImpact(kind string) string {
	switch kind {
	case "swap":
		return "Swapped in a nearby alternative and re-timed the day around it."
	case "remove":
		return "Removed the stop, closed the gap and re-sequenced the rest of the day."
	case "duration":
		return "Updated the visit length and shifted the rest of the day."
	default:
		return "Plan updated."
	}
}
