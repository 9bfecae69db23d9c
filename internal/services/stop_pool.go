package services

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"travel-planner-service/internal/domain"
	"travel-planner-service/internal/ports"
)

// Pool sizing: the builder schedules up to stopsPerDay stops per day and
// the pool always carries sparePoolStops unscheduled extras, so every
// scheduled stop is guaranteed at least one eligible swap alternate.
const (
	stopsPerDay    = 4
	sparePoolStops = 2
)

// Bounds on a single stop's visit length (hours, half-hour steps).
const (
	MinStopHours  = 1.0
	MaxStopHours  = 4.0
	StopHoursStep = 0.5
)

// Categories cycled through when the catalog is too thin and synthetic
// stops must be padded in.
var syntheticCategories = [...]string{"Landmark", "Museum", "Market", "Park", "Viewpoint", "Neighbourhood"}

// BuildStopPool turns catalog attractions into the candidate stop pool
// for a trip, plus the alternates mapping (stop id -> substitute ids,
// same category first) used by swap edits.
//
// Stops matching the goal theme are preferred (moved to the front,
// otherwise keeping catalog order). Thin catalogs are padded with
// deterministic synthetic stops around the destination so planning
// never fails for want of candidates.
func BuildStopPool(dest domain.Place, days int, theme string, attractions []ports.Attraction) ([]domain.Stop, map[string][]string) {
	pool := make([]domain.Stop, 0, len(attractions))
	for _, a := range attractions {
		pool = append(pool, domain.Stop{
			ID:            a.ID,
			Name:          a.Name,
			Category:      a.Category,
			Description:   a.Description,
			DurationHours: ClampDuration(a.DurationHours),
			CostUSD:       a.CostUSD,
			Coords:        a.Coords,
		})
	}

	if theme != "" {
		slices.SortStableFunc(pool, func(a, b domain.Stop) int {
			ma, mb := matchesTheme(a, theme), matchesTheme(b, theme)
			if ma == mb {
				return 0
			}
			if ma {
				return -1
			}
			return 1
		})
	}

	target := days*stopsPerDay + sparePoolStops
	for i := len(pool); i < target; i++ {
		pool = append(pool, syntheticStop(dest, i))
	}

	return pool, buildAlternates(pool)
}

func matchesTheme(s domain.Stop, theme string) bool {
	return strings.Contains(strings.ToLower(s.Category), strings.ToLower(theme)) ||
		strings.Contains(strings.ToLower(s.Description), strings.ToLower(theme))
}

// Synthetic stops sit on a ring around the destination; every field is
// a pure function of the index, so padding is reproducible.
func syntheticStop(dest domain.Place, i int) domain.Stop {
	angle := 2 * math.Pi * float64(i) / 12
	radius := 0.03 + 0.01*float64(i%3)
	category := syntheticCategories[i%len(syntheticCategories)]

	return domain.Stop{
		ID:            fmt.Sprintf("%s-spot-%d", slug(dest.Name), i+1),
		Name:          fmt.Sprintf("%s %s Walk", dest.Name, category),
		Category:      category,
		Description:   fmt.Sprintf("Self-guided %s circuit near central %s.", strings.ToLower(category), dest.Name),
		DurationHours: 1.5 + 0.5*float64(i%3),
		CostUSD:       float64(10 * (i % 4)),
		Coords: domain.Coordinates{
			Lat: dest.Coords.Lat + radius*math.Sin(angle),
			Lng: dest.Coords.Lng + radius*math.Cos(angle),
		},
	}
}

// buildAlternates lists, for each pool stop, the other pool stops that
// can substitute for it: same category first, then the rest, in pool
// order. Eligibility (not currently scheduled) is checked at swap time.
func buildAlternates(pool []domain.Stop) map[string][]string {
	alternates := make(map[string][]string, len(pool))
	for _, s := range pool {
		same := make([]string, 0)
		other := make([]string, 0)
		for _, c := range pool {
			if c.ID == s.ID {
				continue
			}
			if c.Category == s.Category {
				same = append(same, c.ID)
			} else {
				other = append(other, c.ID)
			}
		}
		alternates[s.ID] = append(same, other...)
	}
	return alternates
}

// ClampDuration snaps a visit length to the closest valid half-hour
// step within [MinStopHours, MaxStopHours].
func ClampDuration(hours float64) float64 {
	snapped := math.Round(hours/StopHoursStep) * StopHoursStep
	if snapped < MinStopHours {
		return MinStopHours
	}
	if snapped > MaxStopHours {
		return MaxStopHours
	}
	return snapped
}

func slug(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
}
