package services

import (
	"travel-planner-service/internal/domain"
)

// Edit operations over TravelPlan values.
//
// Every operation is total: for any valid prior plan it returns a new
// consistent plan, never an error. Unknown day indexes or stop ids make
// the edit a no-op returning the prior plan unchanged, since the UI may
// race ahead of engine state (fail-soft, never a hard failure).
//
// Day indexes are 0-based positions into plan.Itinerary, matching how
// the presentation layer iterates days.

// ChangeTransportMode selects one of the plan's existing transport
// options. Itinerary and map are untouched: geometry and best-by
// classifications do not depend on the selection. Idempotent.
func ChangeTransportMode(plan domain.TravelPlan, mode domain.TransportMode) domain.TravelPlan {
	for _, opt := range plan.TransportOptions {
		if opt.Mode == mode {
			out := plan.Clone()
			out.SelectedTransport = opt
			return out
		}
	}
	return plan
}

// SwapStopWithAlternative replaces a stop with its first alternate that
// is not already scheduled anywhere in the plan. The replacement takes
// the same order slot and day membership; only that day is re-timed.
func SwapStopWithAlternative(plan domain.TravelPlan, dayIndex int, stopID string) domain.TravelPlan {
	if dayIndex < 0 || dayIndex >= len(plan.Itinerary) {
		return plan
	}
	slot := plan.Itinerary[dayIndex].FindStop(stopID)
	if slot < 0 {
		return plan
	}

	replacement, ok := pickAlternate(plan, stopID)
	if !ok {
		return plan
	}

	out := plan.Clone()
	day := &out.Itinerary[dayIndex]

	replacement.Order = day.Stops[slot].Order
	day.Stops[slot] = replacement
	day.Stops = TimeDay(day.Stops)
	day.OverBudget = DayHours(day.Stops) > DayCeilingHours

	out.Map = ProjectMap(out)
	return out
}

// UpdateItineraryAfterRemoval removes a stop and locally repairs its
// day: remaining stops are re-sequenced (dense order) and re-timed. A
// day emptied by removal stays in the itinerary with no stops, so the
// plan always keeps goal.Days days.
func UpdateItineraryAfterRemoval(plan domain.TravelPlan, dayIndex int, stopID string) domain.TravelPlan {
	if dayIndex < 0 || dayIndex >= len(plan.Itinerary) {
		return plan
	}
	slot := plan.Itinerary[dayIndex].FindStop(stopID)
	if slot < 0 {
		return plan
	}

	out := plan.Clone()
	day := out.Itinerary[dayIndex]
	day.Stops = append(day.Stops[:slot], day.Stops[slot+1:]...)
	out.Itinerary[dayIndex] = ResequenceDay(out.Goal.Destination, day)

	out.Map = ProjectMap(out)
	return out
}

// AdjustStopDuration sets a stop's visit length (snapped to the valid
// half-hour range) and re-times its day. If the day now exceeds the
// per-day ceiling the day is flagged over budget; no stop is dropped or
// truncated to compensate.
func AdjustStopDuration(plan domain.TravelPlan, dayIndex int, stopID string, hours float64) domain.TravelPlan {
	if dayIndex < 0 || dayIndex >= len(plan.Itinerary) {
		return plan
	}
	slot := plan.Itinerary[dayIndex].FindStop(stopID)
	if slot < 0 {
		return plan
	}

	out := plan.Clone()
	day := &out.Itinerary[dayIndex]

	day.Stops[slot].DurationHours = ClampDuration(hours)
	day.Stops = TimeDay(day.Stops)
	day.OverBudget = DayHours(day.Stops) > DayCeilingHours

	out.Map = ProjectMap(out)
	return out
}

// pickAlternate resolves the swap target: the first id in the stop's
// alternate list that is present in the candidate pool and not
// scheduled in any day.
func pickAlternate(plan domain.TravelPlan, stopID string) (domain.Stop, bool) {
	scheduled := plan.ScheduledIDs()
	for _, altID := range plan.Alternates[stopID] {
		if scheduled[altID] {
			continue
		}
		if alt, ok := plan.FindCandidate(altID); ok {
			return alt, true
		}
	}
	return domain.Stop{}, false
}
