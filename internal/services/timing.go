package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"travel-planner-service/internal/domain"
)

// Timing model: every day starts at the same clock time and stops are
// separated by a flat transit buffer. Both values are fixed so that
// recomputing a day is fully deterministic.
const (
	DayStartMin = 9 * 60
	BufferMin   = 30

	// Ceiling on a day's total load (stop durations plus buffers).
	DayCeilingHours = 10.0
)

// TimeDay recomputes arrival/departure stamps for an ordered day.
// The whole day is always recomputed, never partially patched, so
// derived clock times cannot drift from the stop sequence.
func TimeDay(stops []domain.Stop) []domain.Stop {
	out := make([]domain.Stop, len(stops))
	current := DayStartMin
	for i, s := range stops {
		if i > 0 {
			current += BufferMin
		}
		s.ArriveMin = current
		current += int(math.Round(s.DurationHours * 60))
		s.DepartMin = current
		out[i] = s
	}
	return out
}

// DayHours returns the ceiling-relevant total for a day: the sum of
// stop durations plus one transit buffer between consecutive stops.
func DayHours(stops []domain.Stop) float64 {
	total := 0.0
	for i, s := range stops {
		if i > 0 {
			total += float64(BufferMin) / 60
		}
		total += s.DurationHours
	}
	return total
}

// ParseClock converts "HH:MM" to minutes since midnight (0 on bad input).
func ParseClock(clock string) int {
	h, m, ok := strings.Cut(clock, ":")
	if !ok {
		return 0
	}
	hours, err1 := strconv.Atoi(strings.TrimSpace(h))
	minutes, err2 := strconv.Atoi(strings.TrimSpace(m))
	if err1 != nil || err2 != nil {
		return 0
	}
	return hours*60 + minutes
}

// FormatClock renders minutes since midnight as "HH:MM", marking
// spill-over past midnight with a "(+1d)" suffix.
func FormatClock(min int) string {
	suffix := ""
	for min >= 24*60 {
		min -= 24 * 60
		suffix = " (+1d)"
	}
	return fmt.Sprintf("%02d:%02d%s", min/60, min%60, suffix)
}
