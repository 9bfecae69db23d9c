package planstore

import (
	"context"
	"errors"
	"sync"
	"travel-planner-service/internal/domain"
)

// MemoryStore keeps plan snapshots in process memory. Default store for
// single-instance runs; snapshots do not survive a restart.
type MemoryStore struct {
	mu    sync.RWMutex
	plans map[string]domain.TravelPlan
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{plans: make(map[string]domain.TravelPlan)}
}

// Save stores a deep copy so later caller mutations cannot leak in.
func (s *MemoryStore) Save(ctx context.Context, plan domain.TravelPlan) error {
	if plan.ID == "" {
		return errors.New("memory plan store: plan id must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.plans[plan.ID] = plan.Clone()
	return nil
}

// Get returns a deep copy of the stored snapshot.
func (s *MemoryStore) Get(ctx context.Context, id string) (domain.TravelPlan, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	plan, ok := s.plans[id]
	if !ok {
		return domain.TravelPlan{}, false, nil
	}
	return plan.Clone(), true, nil
}
