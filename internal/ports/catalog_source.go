package ports

import (
	"context"
	"travel-planner-service/internal/domain"
)

// Catalog attraction row, before pool sizing and scheduling.
type Attraction struct {
	ID            string
	Name          string
	Category      string
	Description   string
	DurationHours float64
	CostUSD       float64
	Coords        domain.Coordinates
}

// Pricing/speed profile used to derive one transport option from the
// trip's great-circle distance. MaxRangeKm of 0 means unlimited range.
type ModeProfile struct {
	Mode          domain.TransportMode
	SpeedKmh      float64
	MaxRangeKm    float64
	BaseUSD       float64
	USDPerKm      float64
	CarbonKgPerKm float64
	OverheadHours float64
	Departure     string
	Summary       string
}

// Port: a boundary for retrieving catalog data (places, attractions,
// transport mode profiles) from a data source.
type CatalogSource interface {
	// Resolve a place name to coordinates; ok is false when unknown.
	LookupPlace(ctx context.Context, name string) (place domain.Place, ok bool, err error)

	// Return attraction candidates for a destination (may be empty).
	ListAttractions(ctx context.Context, destination string) ([]Attraction, error)

	// Return transport mode profiles in deterministic order.
	ModeProfiles(ctx context.Context) ([]ModeProfile, error)

	// Return the destinations the catalog has attraction coverage for.
	ListDestinations(ctx context.Context) ([]domain.Place, error)
}
