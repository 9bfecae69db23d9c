package services

import (
	"context"
	"fmt"
	"hash/fnv"
	"travel-planner-service/internal/domain"
	"travel-planner-service/internal/ports"
)

// PlanTrip interprets a free-form goal, resolves places and catalog
// data through the catalog port, and assembles a complete TravelPlan.
// Catalog lookups are the only non-pure step; assembly itself is
// deterministic for a given goal and catalog contents.
func PlanTrip(ctx context.Context, goalText string, catalog ports.CatalogSource) (domain.TravelPlan, error) {
	draft := InterpretGoal(goalText)

	origin, err := resolvePlace(ctx, catalog, draft.OriginName)
	if err != nil {
		return domain.TravelPlan{}, fmt.Errorf("plan trip: resolve origin: %w", err)
	}
	destination, err := resolvePlace(ctx, catalog, draft.DestinationName)
	if err != nil {
		return domain.TravelPlan{}, fmt.Errorf("plan trip: resolve destination: %w", err)
	}

	attractions, err := catalog.ListAttractions(ctx, destination.Name)
	if err != nil {
		return domain.TravelPlan{}, fmt.Errorf("plan trip: list attractions for %q: %w", destination.Name, err)
	}

	profiles, err := catalog.ModeProfiles(ctx)
	if err != nil {
		return domain.TravelPlan{}, fmt.Errorf("plan trip: load mode profiles: %w", err)
	}

	goal := domain.Goal{
		Origin:      origin,
		Destination: destination,
		Days:        draft.Days,
		Theme:       draft.Theme,
	}

	return AssemblePlan(goal, profiles, attractions), nil
}

// AssemblePlan is the pure assembly path shared by PlanTrip and tests:
// transport derivation, pool construction, itinerary building and map
// projection from already-fetched catalog data.
//
// The default selection is the best-value option; faster options stay
// available for ChangeTransportMode.
func AssemblePlan(goal domain.Goal, profiles []ports.ModeProfile, attractions []ports.Attraction) domain.TravelPlan {
	options := BuildTransportOptions(goal.Origin, goal.Destination, profiles)
	bestByCost, bestByTime := ClassifyBest(options)

	pool, alternates := BuildStopPool(goal.Destination, goal.Days, goal.Theme, attractions)

	plan := domain.TravelPlan{
		Goal:              goal,
		TransportOptions:  options,
		BestByCost:        bestByCost,
		BestByTime:        bestByTime,
		SelectedTransport: bestByCost,
		Itinerary:         BuildItinerary(goal.Destination, goal.Days, pool),
		Candidates:        pool,
		Alternates:        alternates,
	}
	plan.Map = ProjectMap(plan)
	return plan
}

// resolvePlace returns catalog coordinates for known names and
// hash-derived coordinates for unknown ones, so a plan can always be
// constructed. Lookup failures fall back the same way.
func resolvePlace(ctx context.Context, catalog ports.CatalogSource, name string) (domain.Place, error) {
	place, ok, err := catalog.LookupPlace(ctx, name)
	if err != nil {
		return domain.Place{}, fmt.Errorf("lookup place %q: %w", name, err)
	}
	if ok {
		return place, nil
	}
	return syntheticPlace(name), nil
}

// syntheticPlace derives stable pseudo-coordinates from the place name.
// Latitude stays within inhabited bands.
func syntheticPlace(name string) domain.Place {
	h := fnv.New64a()
	h.Write([]byte(name))
	sum := h.Sum64()

	lat := -55 + float64(sum%120_000)/1000
	lng := -180 + float64((sum/120_000)%360_000)/1000

	return domain.Place{
		Name:   name,
		Coords: domain.Coordinates{Lat: lat, Lng: lng},
	}
}
