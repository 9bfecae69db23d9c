package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"travel-planner-service/internal/adapters/catalog"
	"travel-planner-service/internal/adapters/planstore"
	"travel-planner-service/internal/api/dto"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	router := NewRouter(catalog.NewStaticCatalog(), planstore.NewMemoryStore())
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) (*http.Response, dto.PlanResponse) {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()

	var out dto.PlanResponse
	if resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return resp, out
}

func TestPlanLifecycle(t *testing.T) {
	srv := newTestServer(t)

	resp, created := postJSON(t, srv.URL+"/plans", dto.PlanRequest{Goal: "Plan a 2-day trip to Tokyo from New Delhi"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create status = %d", resp.StatusCode)
	}
	plan := created.Plan
	if plan.ID == "" {
		t.Fatalf("created plan has no id")
	}
	if plan.Goal.Destination.Name != "Tokyo" || len(plan.Itinerary) != 2 {
		t.Fatalf("unexpected plan shape: dest=%s days=%d", plan.Goal.Destination.Name, len(plan.Itinerary))
	}
	if created.Status == "" || !strings.Contains(created.Status, "2-day") {
		t.Fatalf("status line = %q", created.Status)
	}

	// Retrieval returns the stored snapshot.
	getResp, err := http.Get(srv.URL + "/plans/" + plan.ID)
	if err != nil {
		t.Fatalf("GET plan: %v", err)
	}
	defer getResp.Body.Close()
	if getResp.StatusCode != http.StatusOK {
		t.Fatalf("get status = %d", getResp.StatusCode)
	}
	var fetched dto.PlanResponse
	if err := json.NewDecoder(getResp.Body).Decode(&fetched); err != nil {
		t.Fatalf("decode get response: %v", err)
	}
	if fetched.Plan.ID != plan.ID {
		t.Fatalf("fetched id = %q, want %q", fetched.Plan.ID, plan.ID)
	}

	// Edits mutate the stored snapshot in sequence.
	target := plan.Itinerary[0].Stops[0]
	editURL := fmt.Sprintf("%s/plans/%s/duration", srv.URL, plan.ID)
	resp, edited := postJSON(t, editURL, dto.DurationRequest{DayIndex: 0, StopID: target.ID, DurationHours: 3.5})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("duration edit status = %d", resp.StatusCode)
	}
	if got := edited.Plan.Itinerary[0].Stops[0].DurationHours; got != 3.5 {
		t.Fatalf("duration after edit = %v, want 3.5", got)
	}
	if edited.Plan.ID != plan.ID {
		t.Fatalf("edit changed plan id to %q", edited.Plan.ID)
	}

	removeURL := fmt.Sprintf("%s/plans/%s/remove", srv.URL, plan.ID)
	resp, afterRemove := postJSON(t, removeURL, dto.RemoveRequest{DayIndex: 0, StopID: target.ID})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("remove status = %d", resp.StatusCode)
	}
	if afterRemove.Plan.Itinerary[0].FindStop(target.ID) >= 0 {
		t.Fatalf("removed stop still present")
	}
	if len(afterRemove.Plan.Itinerary[0].Stops) != len(edited.Plan.Itinerary[0].Stops)-1 {
		t.Fatalf("remove did not shrink the day")
	}

	swapURL := fmt.Sprintf("%s/plans/%s/swap", srv.URL, plan.ID)
	swapTarget := afterRemove.Plan.Itinerary[1].Stops[0]
	resp, afterSwap := postJSON(t, swapURL, dto.SwapRequest{DayIndex: 1, StopID: swapTarget.ID})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("swap status = %d", resp.StatusCode)
	}
	if afterSwap.Plan.Itinerary[1].Stops[0].ID == swapTarget.ID {
		t.Fatalf("swap did not replace the stop")
	}
}

func TestChangeTransportEndpoint(t *testing.T) {
	srv := newTestServer(t)

	_, created := postJSON(t, srv.URL+"/plans", dto.PlanRequest{Goal: "5-day trip to Rome from Paris"})
	if len(created.Plan.TransportOptions) < 2 {
		t.Fatalf("expected multiple transport options for Paris-Rome, got %d", len(created.Plan.TransportOptions))
	}

	url := fmt.Sprintf("%s/plans/%s/transport", srv.URL, created.Plan.ID)
	resp, edited := postJSON(t, url, dto.TransportRequest{Mode: "Flight"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("transport status = %d", resp.StatusCode)
	}
	if got := edited.Plan.SelectedTransport.Mode; string(got) != "Flight" {
		t.Fatalf("selected mode = %s, want Flight", got)
	}
	if !strings.Contains(edited.Status, "flight") {
		t.Fatalf("status line = %q", edited.Status)
	}
}

func TestPlanNotFound(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/plans/no-such-plan")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}

	editResp, _ := postJSON(t, srv.URL+"/plans/no-such-plan/swap", dto.SwapRequest{DayIndex: 0, StopID: "x"})
	if editResp.StatusCode != http.StatusNotFound {
		t.Fatalf("edit status = %d, want 404", editResp.StatusCode)
	}
}

func TestRejectsMalformedBody(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/plans", "application/json", strings.NewReader(`{"goal": "x", "extra": true}`))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unknown field status = %d, want 400", resp.StatusCode)
	}

	resp2, err := http.Post(srv.URL+"/plans", "application/json", strings.NewReader(`not json`))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusBadRequest {
		t.Fatalf("garbage body status = %d, want 400", resp2.StatusCode)
	}
}

func TestHealthAndDestinations(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("health status = %d", resp.StatusCode)
	}

	resp2, err := http.Get(srv.URL + "/destinations")
	if err != nil {
		t.Fatalf("GET /destinations: %v", err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusOK {
		t.Fatalf("destinations status = %d", resp2.StatusCode)
	}
	var body struct {
		Destinations []struct {
			Name string `json:"name"`
		} `json:"destinations"`
	}
	if err := json.NewDecoder(resp2.Body).Decode(&body); err != nil {
		t.Fatalf("decode destinations: %v", err)
	}
	if len(body.Destinations) == 0 {
		t.Fatalf("no destinations returned")
	}
}
