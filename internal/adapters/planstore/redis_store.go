package planstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"travel-planner-service/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps plan snapshots in Redis as JSON values with a
// session TTL, so edits can address plans across requests and multiple
// service instances. Not durable storage: expired plans are simply gone
// and the caller plans again.
type RedisStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{Client: client, TTL: ttl}
}

func planKey(id string) string { return "plan:" + id }

func (s *RedisStore) Save(ctx context.Context, plan domain.TravelPlan) error {
	if s.Client == nil {
		return errors.New("redis plan store: client is nil")
	}
	if plan.ID == "" {
		return errors.New("redis plan store: plan id must not be empty")
	}

	payload, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("redis plan store: marshal plan %q: %w", plan.ID, err)
	}

	if err := s.Client.Set(ctx, planKey(plan.ID), payload, s.TTL).Err(); err != nil {
		return fmt.Errorf("redis plan store: set plan %q: %w", plan.ID, err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (domain.TravelPlan, bool, error) {
	if s.Client == nil {
		return domain.TravelPlan{}, false, errors.New("redis plan store: client is nil")
	}

	payload, err := s.Client.Get(ctx, planKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.TravelPlan{}, false, nil
	}
	if err != nil {
		return domain.TravelPlan{}, false, fmt.Errorf("redis plan store: get plan %q: %w", id, err)
	}

	var plan domain.TravelPlan
	if err := json.Unmarshal(payload, &plan); err != nil {
		return domain.TravelPlan{}, false, fmt.Errorf("redis plan store: unmarshal plan %q: %w", id, err)
	}
	return plan, true, nil
}
