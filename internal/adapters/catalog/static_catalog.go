package catalog

import (
	"context"
	"slices"
	"strings"
	"travel-planner-service/internal/domain"
	"travel-planner-service/internal/ports"
)

// StaticCatalog serves the embedded catalog tables. It is the default
// CatalogSource: deterministic, I/O-free, and sufficient for the core
// planning path without any external service.
type StaticCatalog struct{}

func NewStaticCatalog() *StaticCatalog { return &StaticCatalog{} }

func (c *StaticCatalog) LookupPlace(ctx context.Context, name string) (domain.Place, bool, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, p := range knownPlaces {
		if strings.ToLower(p.Name) == key {
			return p, true, nil
		}
	}
	return domain.Place{}, false, nil
}

func (c *StaticCatalog) ListAttractions(ctx context.Context, destination string) ([]ports.Attraction, error) {
	key := strings.ToLower(strings.TrimSpace(destination))
	rows, ok := attractionsByDestination[key]
	if !ok {
		return nil, nil
	}
	return append([]ports.Attraction(nil), rows...), nil
}

func (c *StaticCatalog) ModeProfiles(ctx context.Context) ([]ports.ModeProfile, error) {
	return append([]ports.ModeProfile(nil), defaultModeProfiles...), nil
}

// ListDestinations returns the places with attraction coverage, sorted
// by name for stable API output.
func (c *StaticCatalog) ListDestinations(ctx context.Context) ([]domain.Place, error) {
	out := make([]domain.Place, 0, len(attractionsByDestination))
	for _, p := range knownPlaces {
		if _, ok := attractionsByDestination[strings.ToLower(p.Name)]; ok {
			out = append(out, p)
		}
	}
	slices.SortFunc(out, func(a, b domain.Place) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out, nil
}
