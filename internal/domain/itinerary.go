package domain

// An ordered set of Stops assigned to one calendar day of the trip.
// Day numbers are 1-based and contiguous 1..N for an N-day goal.
// Color is carried for UI correlation only; the engine never interprets it.
// OverBudget marks a day whose total (durations plus transit buffers)
// exceeds the per-day ceiling after a user edit.
type ItineraryDay struct {
	Day        int    `json:"day"`
	Title      string `json:"title"`
	Summary    string `json:"summary"`
	Color      string `json:"color"`
	OverBudget bool   `json:"over_budget"`
	Stops      []Stop `json:"stops"`
}

// FindStop returns the index of the stop with the given id, or -1.
func (d ItineraryDay) FindStop(stopID string) int {
	for i, s := range d.Stops {
		if s.ID == stopID {
			return i
		}
	}
	return -1
}
