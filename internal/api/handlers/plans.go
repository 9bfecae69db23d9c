package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"travel-planner-service/internal/api/dto"
	"travel-planner-service/internal/domain"
	"travel-planner-service/internal/platform/obs"
	"travel-planner-service/internal/ports"
	"travel-planner-service/internal/services"

	"github.com/google/uuid"
)

// PlanHandler exposes plan creation, retrieval and the four edit
// operations. Each edit loads the prior snapshot, applies the pure edit
// and saves the new value; concurrent edits to one plan resolve as last
// write wins at this boundary.
type PlanHandler struct {
	Catalog ports.CatalogSource
	Store   ports.PlanStore
}

// Create handles POST /plans: interpret the goal text and build a plan.
// Empty or unparseable goals still plan (interpreter defaults apply).
func (h *PlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.PlanRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	var err error
	defer obs.Time(r.Context(), "plans.Create")(&err)

	plan, err := services.PlanTrip(r.Context(), req.Goal, h.Catalog)
	if err != nil {
		log.Printf("plan trip failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	plan.ID = uuid.NewString()
	if err = h.Store.Save(r.Context(), plan); err != nil {
		log.Printf("save plan failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	status := fmt.Sprintf(
		"Optimized for value via %s and built a %d-day circuit around %s.",
		strings.ToLower(string(plan.BestByCost.Mode)), plan.Goal.Days, plan.Goal.Destination.Name,
	)
	writeJSON(w, r, http.StatusOK, dto.PlanResponse{Plan: plan, Status: status})
}

// Get handles GET /plans/{id}.
func (h *PlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	plan, ok := h.loadPlan(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, dto.PlanResponse{Plan: plan})
}

// ChangeTransport handles POST /plans/{id}/transport.
func (h *PlanHandler) ChangeTransport(w http.ResponseWriter, r *http.Request) {
	var req dto.TransportRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	h.applyEdit(w, r, func(plan domain.TravelPlan) (domain.TravelPlan, string) {
		next := services.ChangeTransportMode(plan, domain.TransportMode(req.Mode))
		status := fmt.Sprintf("Locked in %s and recalculated routing.", strings.ToLower(string(next.SelectedTransport.Mode)))
		return next, status
	})
}

// Swap handles POST /plans/{id}/swap.
func (h *PlanHandler) Swap(w http.ResponseWriter, r *http.Request) {
	var req dto.SwapRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	h.applyEdit(w, r, func(plan domain.TravelPlan) (domain.TravelPlan, string) {
		return services.SwapStopWithAlternative(plan, req.DayIndex, req.StopID), services.ExplainEditImpact("swap")
	})
}

// Remove handles POST /plans/{id}/remove.
func (h *PlanHandler) Remove(w http.ResponseWriter, r *http.Request) {
	var req dto.RemoveRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	h.applyEdit(w, r, func(plan domain.TravelPlan) (domain.TravelPlan, string) {
		return services.UpdateItineraryAfterRemoval(plan, req.DayIndex, req.StopID), services.ExplainEditImpact("remove")
	})
}

// AdjustDuration handles POST /plans/{id}/duration.
func (h *PlanHandler) AdjustDuration(w http.ResponseWriter, r *http.Request) {
	var req dto.DurationRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	h.applyEdit(w, r, func(plan domain.TravelPlan) (domain.TravelPlan, string) {
		return services.AdjustStopDuration(plan, req.DayIndex, req.StopID, req.DurationHours), services.ExplainEditImpact("duration")
	})
}

func (h *PlanHandler) applyEdit(
	w http.ResponseWriter,
	r *http.Request,
	edit func(domain.TravelPlan) (domain.TravelPlan, string),
) {
	plan, ok := h.loadPlan(w, r)
	if !ok {
		return
	}

	next, status := edit(plan)
	next.ID = plan.ID

	if err := h.Store.Save(r.Context(), next); err != nil {
		log.Printf("save plan failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.PlanResponse{Plan: next, Status: status})
}

func (h *PlanHandler) loadPlan(w http.ResponseWriter, r *http.Request) (domain.TravelPlan, bool) {
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		writeError(w, r, http.StatusBadRequest, "plan id is required")
		return domain.TravelPlan{}, false
	}

	plan, ok, err := h.Store.Get(r.Context(), id)
	if err != nil {
		log.Printf("load plan failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return domain.TravelPlan{}, false
	}
	if !ok {
		writeError(w, r, http.StatusNotFound, "plan not found")
		return domain.TravelPlan{}, false
	}
	return plan, true
}
