package domain

// A single point-of-interest visit within a day.
// Order is the 1-based position within its day, dense with no gaps.
// Arrival and departure stamps are derived by the timing engine and are
// never authoritative.
type Stop struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Category      string      `json:"category"`
	Description   string      `json:"description"`
	Order         int         `json:"order"`
	DurationHours float64     `json:"duration_hours"`
	CostUSD       float64     `json:"cost_usd"`
	Coords        Coordinates `json:"coords"`
	ArriveMin     int         `json:"arrive_min"`
	DepartMin     int         `json:"depart_min"`
}
