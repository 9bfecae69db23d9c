package planstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, time.Hour)
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store := newTestRedisStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, storedPlan("p1")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, ok, err := store.Get(ctx, "p1")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if got.ID != "p1" || got.Goal.Origin.Name != "Paris" {
		t.Fatalf("round-trip lost data: %+v", got)
	}
	if got.Alternates["colosseum"][0] != "pantheon" {
		t.Fatalf("alternates not preserved: %v", got.Alternates)
	}
	if got.Itinerary[0].Stops[0].ArriveMin != 540 {
		t.Fatalf("timing not preserved: %+v", got.Itinerary[0].Stops[0])
	}
}

func TestRedisStoreMissing(t *testing.T) {
	store := newTestRedisStore(t)

	if _, ok, err := store.Get(context.Background(), "nope"); ok || err != nil {
		t.Fatalf("missing plan: ok=%v err=%v, want false nil", ok, err)
	}
}

func TestRedisStoreRejectsEmptyID(t *testing.T) {
	store := newTestRedisStore(t)

	if err := store.Save(context.Background(), storedPlan("")); err == nil {
		t.Fatalf("expected error for empty plan id")
	}
}

func TestRedisStoreSetsTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	store := NewRedisStore(client, time.Hour)

	if err := store.Save(context.Background(), storedPlan("p1")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if ttl := mr.TTL("plan:p1"); ttl != time.Hour {
		t.Fatalf("ttl = %v, want 1h", ttl)
	}
}
