package services

import (
	"fmt"
	"math"
	"slices"
	"travel-planner-service/internal/domain"
)

// Fixed presentation tables keyed by day index. Immutable shared lookup
// state: passed around by value, never mutated by planning runs.
var (
	dayPalette = [...]string{"#34d399", "#38bdf8", "#f472b6", "#facc15", "#a78bfa", "#fb7185"}

	dayTitles = [...]string{
		"Icons & Orientation",
		"Neighbourhood Deep-Dive",
		"Culture & Flavours",
		"Green Escapes",
		"Hidden Corners",
		"Farewell Highlights",
	}

	daySummaries = [...]string{
		"Landmark-first loop to get your bearings",
		"Slower pace through local streets",
		"Galleries, temples and long lunches",
		"Parks and open-air breathers",
		"Side streets the guidebooks skip",
		"Favourites revisited before departure",
	}
)

// BuildItinerary partitions and orders the candidate pool into days
// balanced day sequences.
//
// Clustering is a heuristic, not an optimum: candidates are banded by
// angular sector around the pool centroid (sort by bearing, then
// ceiling-division chunking) to keep each day geographically coherent
// and limit cross-day backtracking. Within a day, stops follow a greedy
// nearest-neighbor path anchored at the destination. Complexity is
// bounded at O(days x stops_per_day^2); no TSP optimality is claimed.
//
// Days past the candidate supply stay present with empty stop lists so
// the itinerary length always equals the goal's day count.
func BuildItinerary(dest domain.Place, days int, pool []domain.Stop) []domain.ItineraryDay {
	scheduled := pool
	if limit := days * stopsPerDay; len(scheduled) > limit {
		scheduled = scheduled[:limit]
	}

	groups := bandByBearing(scheduled, days)

	itinerary := make([]domain.ItineraryDay, days)
	for i := range itinerary {
		day := domain.ItineraryDay{
			Day:     i + 1,
			Title:   fmt.Sprintf("Day %d: %s", i+1, dayTitles[i%len(dayTitles)]),
			Summary: daySummaries[i%len(daySummaries)],
			Color:   dayPalette[i%len(dayPalette)],
		}
		stops := orderByNearestNeighbor(dest, groups[i])
		stops = trimToCeiling(stops)
		day.Stops = TimeDay(stops)
		itinerary[i] = day
	}

	return itinerary
}

// ResequenceDay is the local-repair path used by structural edits: it
// re-orders, renumbers and re-times one day without touching the rest
// of the itinerary, so a single-stop edit never re-clusters the plan.
func ResequenceDay(dest domain.Place, day domain.ItineraryDay) domain.ItineraryDay {
	stops := orderByNearestNeighbor(dest, day.Stops)
	day.Stops = TimeDay(stops)
	day.OverBudget = DayHours(day.Stops) > DayCeilingHours
	return day
}

// bandByBearing sorts stops by bearing from the group centroid and
// chunks the result into contiguous bands, one per day. Ceiling
// division keeps the distribution as even as possible.
func bandByBearing(stops []domain.Stop, days int) [][]domain.Stop {
	groups := make([][]domain.Stop, days)
	if len(stops) == 0 {
		return groups
	}

	var cLat, cLng float64
	for _, s := range stops {
		cLat += s.Coords.Lat
		cLng += s.Coords.Lng
	}
	cLat /= float64(len(stops))
	cLng /= float64(len(stops))

	sorted := append([]domain.Stop(nil), stops...)
	slices.SortFunc(sorted, func(a, b domain.Stop) int {
		ba := math.Atan2(a.Coords.Lat-cLat, a.Coords.Lng-cLng)
		bb := math.Atan2(b.Coords.Lat-cLat, b.Coords.Lng-cLng)
		if ba < bb {
			return -1
		}
		if ba > bb {
			return 1
		}
		// Tie-breaker ensures deterministic banding for co-located stops.
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})

	chunkSize := (len(sorted) + days - 1) / days
	for i := 0; i < days; i++ {
		start := i * chunkSize
		if start >= len(sorted) {
			break
		}
		end := start + chunkSize
		if end > len(sorted) {
			end = len(sorted)
		}
		groups[i] = sorted[start:end]
	}

	return groups
}

// orderByNearestNeighbor walks a short open path through the group:
// start from the destination anchor and repeatedly visit the closest
// remaining stop. Greedy and deterministic, not globally optimal.
func orderByNearestNeighbor(dest domain.Place, stops []domain.Stop) []domain.Stop {
	remaining := append([]domain.Stop(nil), stops...)
	ordered := make([]domain.Stop, 0, len(stops))
	current := dest.Coords

	for len(remaining) > 0 {
		best := -1
		bestDist := math.MaxFloat64
		for i, s := range remaining {
			d := current.DistanceKm(s.Coords)
			// Tie-breaker ensures deterministic ordering when distances are equal.
			if d < bestDist || (d == bestDist && (best < 0 || s.ID < remaining[best].ID)) {
				bestDist = d
				best = i
			}
		}

		next := remaining[best]
		next.Order = len(ordered) + 1
		ordered = append(ordered, next)
		current = next.Coords
		remaining = append(remaining[:best], remaining[best+1:]...)
	}

	return ordered
}

// trimToCeiling keeps the leading stops that fit the per-day ceiling.
// Trimmed stops are not lost: they remain in the plan's candidate pool
// and become eligible swap alternates.
func trimToCeiling(stops []domain.Stop) []domain.Stop {
	total := 0.0
	for i, s := range stops {
		if i > 0 {
			total += float64(BufferMin) / 60
		}
		total += s.DurationHours
		if total > DayCeilingHours {
			return stops[:i]
		}
	}
	return stops
}
