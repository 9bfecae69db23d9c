package services

import (
	"regexp"
	"strconv"
	"strings"
)

// Raw fields extracted from goal text, before place resolution.
type GoalDraft struct {
	OriginName      string
	DestinationName string
	Days            int
	Theme           string
}

// Defaults applied when extraction is ambiguous or missing.
// The interpreter always produces some goal; it never fails.
const (
	DefaultOrigin      = "New Delhi"
	DefaultDestination = "Tokyo"
	DefaultDays        = 2

	MinDays = 1
	MaxDays = 6
)

var (
	dayCountPattern = regexp.MustCompile(`(\d+)\s*-?\s*[Dd]ays?\b`)

	// Place names are taken as a run of capitalized words following the
	// keyword, so "to Tokyo from New Delhi" splits cleanly.
	destinationPattern = regexp.MustCompile(`\b[Tt]o\s+([A-Z][A-Za-z'.-]*(?:\s+[A-Z][A-Za-z'.-]*)*)`)
	originPattern      = regexp.MustCompile(`\b[Ff]rom\s+([A-Z][A-Za-z'.-]*(?:\s+[A-Z][A-Za-z'.-]*)*)`)
)

// Theme keywords checked in fixed order for determinism.
var themeKeywords = []struct {
	keyword string
	theme   string
}{
	{"food", "food"},
	{"culinary", "food"},
	{"eat", "food"},
	{"culture", "culture"},
	{"museum", "culture"},
	{"history", "culture"},
	{"art", "art"},
	{"nature", "nature"},
	{"hike", "nature"},
	{"nightlife", "nightlife"},
	{"shopping", "shopping"},
}

// InterpretGoal extracts origin, destination, day count and an optional
// theme from free-form text. Ambiguous or missing fields fall back to
// the documented defaults rather than failing (pure function).
func InterpretGoal(text string) GoalDraft {
	draft := GoalDraft{
		OriginName:      DefaultOrigin,
		DestinationName: DefaultDestination,
		Days:            DefaultDays,
	}

	if m := dayCountPattern.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			draft.Days = clampDays(n)
		}
	}

	if m := destinationPattern.FindStringSubmatch(text); m != nil {
		draft.DestinationName = strings.TrimSpace(m[1])
	}

	if m := originPattern.FindStringSubmatch(text); m != nil {
		draft.OriginName = strings.TrimSpace(m[1])
	}

	lower := strings.ToLower(text)
	for _, tk := range themeKeywords {
		if strings.Contains(lower, tk.keyword) {
			draft.Theme = tk.theme
			break
		}
	}

	return draft
}

func clampDays(n int) int {
	if n < MinDays {
		return MinDays
	}
	if n > MaxDays {
		return MaxDays
	}
	return n
}
