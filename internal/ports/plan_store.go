package ports

import (
	"context"
	"travel-planner-service/internal/domain"
)

// Port: session storage for plan snapshots addressed by id.
// Callers serialize edits per plan id ("last write wins"); the store
// itself only persists and returns whole snapshots.
type PlanStore interface {
	Save(ctx context.Context, plan domain.TravelPlan) error
	Get(ctx context.Context, id string) (plan domain.TravelPlan, ok bool, err error)
}
