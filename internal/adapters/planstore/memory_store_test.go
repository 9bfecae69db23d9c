package planstore

import (
	"context"
	"testing"
	"travel-planner-service/internal/domain"
)

func storedPlan(id string) domain.TravelPlan {
	return domain.TravelPlan{
		ID: id,
		Goal: domain.Goal{
			Origin:      domain.Place{Name: "Paris", Coords: domain.Coordinates{Lat: 48.8566, Lng: 2.3522}},
			Destination: domain.Place{Name: "Rome", Coords: domain.Coordinates{Lat: 41.9028, Lng: 12.4964}},
			Days:        2,
		},
		TransportOptions: []domain.TransportOption{{Mode: domain.ModeTrain, PriceUSD: 117}},
		Itinerary: []domain.ItineraryDay{
			{Day: 1, Title: "Day 1", Color: "#34d399", Stops: []domain.Stop{
				{ID: "colosseum", Name: "Colosseum", Order: 1, DurationHours: 2, ArriveMin: 540, DepartMin: 660},
			}},
		},
		Candidates: []domain.Stop{{ID: "colosseum"}, {ID: "pantheon"}},
		Alternates: map[string][]string{"colosseum": {"pantheon"}},
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Save(ctx, storedPlan("p1")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, ok, err := store.Get(ctx, "p1")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if got.Goal.Destination.Name != "Rome" || len(got.Itinerary) != 1 {
		t.Fatalf("round-trip lost data: %+v", got)
	}
}

func TestMemoryStoreMissing(t *testing.T) {
	store := NewMemoryStore()

	if _, ok, err := store.Get(context.Background(), "nope"); ok || err != nil {
		t.Fatalf("missing plan: ok=%v err=%v, want false nil", ok, err)
	}
}

func TestMemoryStoreRejectsEmptyID(t *testing.T) {
	store := NewMemoryStore()

	if err := store.Save(context.Background(), domain.TravelPlan{}); err == nil {
		t.Fatalf("expected error for empty plan id")
	}
}

func TestMemoryStoreIsolatesSnapshots(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	plan := storedPlan("p1")
	if err := store.Save(ctx, plan); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Mutating the saved value or a fetched copy must not touch the
	// stored snapshot.
	plan.Itinerary[0].Stops[0].Name = "mutated"
	first, _, _ := store.Get(ctx, "p1")
	first.Itinerary[0].Stops[0].Name = "also mutated"

	second, _, _ := store.Get(ctx, "p1")
	if second.Itinerary[0].Stops[0].Name != "Colosseum" {
		t.Fatalf("stored snapshot was mutated: %q", second.Itinerary[0].Stops[0].Name)
	}
}
