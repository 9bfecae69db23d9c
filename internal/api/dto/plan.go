package dto

import "travel-planner-service/internal/domain"

type PlanRequest struct {
	Goal string `json:"goal"`
}

type TransportRequest struct {
	Mode string `json:"mode"`
}

type SwapRequest struct {
	DayIndex int    `json:"day_index"`
	StopID   string `json:"stop_id"`
}

type RemoveRequest struct {
	DayIndex int    `json:"day_index"`
	StopID   string `json:"stop_id"`
}

type DurationRequest struct {
	DayIndex      int     `json:"day_index"`
	StopID        string  `json:"stop_id"`
	DurationHours float64 `json:"duration_hours"`
}

// PlanResponse wraps the plan snapshot with the human-readable status
// line the presentation layer shows after planning or editing.
type PlanResponse struct {
	Plan   domain.TravelPlan `json:"plan"`
	Status string            `json:"status,omitempty"`
}
