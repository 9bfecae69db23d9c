package domain

// The complete, consistent snapshot of goal + transport + itinerary +
// derived map. A TravelPlan is the single source of truth; every UI
// field is a projection of it.
//
// Plans are value types: each edit clones the prior plan and returns a
// new consistent value, so earlier snapshots stay valid for undo/audit.
//
// Candidates holds the full stop pool (scheduled or not) so that swap
// edits can resolve Alternates (stop id -> substitute stop ids) without
// re-querying the catalog.
type TravelPlan struct {
	ID                string              `json:"id"`
	Goal              Goal                `json:"goal"`
	TransportOptions  []TransportOption   `json:"transport_options"`
	BestByCost        TransportOption     `json:"best_by_cost"`
	BestByTime        TransportOption     `json:"best_by_time"`
	SelectedTransport TransportOption     `json:"selected_transport"`
	Itinerary         []ItineraryDay      `json:"itinerary"`
	Candidates        []Stop              `json:"candidates"`
	Alternates        map[string][]string `json:"alternates"`
	Map               MapData             `json:"map"`
}

// Clone returns a deep copy safe to rewrite without touching the receiver.
func (p TravelPlan) Clone() TravelPlan {
	out := p

	out.TransportOptions = append([]TransportOption(nil), p.TransportOptions...)

	out.Itinerary = make([]ItineraryDay, len(p.Itinerary))
	for i, day := range p.Itinerary {
		day.Stops = append([]Stop(nil), day.Stops...)
		out.Itinerary[i] = day
	}

	out.Candidates = append([]Stop(nil), p.Candidates...)

	out.Alternates = make(map[string][]string, len(p.Alternates))
	for id, alts := range p.Alternates {
		out.Alternates[id] = append([]string(nil), alts...)
	}

	out.Map.Nodes = append([]MapNode(nil), p.Map.Nodes...)
	out.Map.Legs = append([]MapLeg(nil), p.Map.Legs...)

	return out
}

// ScheduledIDs returns the set of stop ids currently placed in the itinerary.
func (p TravelPlan) ScheduledIDs() map[string]bool {
	ids := make(map[string]bool)
	for _, day := range p.Itinerary {
		for _, s := range day.Stops {
			ids[s.ID] = true
		}
	}
	return ids
}

// FindCandidate returns the pool entry with the given id, if present.
func (p TravelPlan) FindCandidate(stopID string) (Stop, bool) {
	for _, s := range p.Candidates {
		if s.ID == stopID {
			return s, true
		}
	}
	return Stop{}, false
}
