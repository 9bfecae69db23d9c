package domain

// Transport mode between the trip origin and destination.
type TransportMode string

const (
	ModeFlight TransportMode = "Flight"
	ModeTrain  TransportMode = "Train"
	ModeBus    TransportMode = "Bus"
	ModeCar    TransportMode = "Car"
)

// Rank orders modes for deterministic tie-breaking when price, duration
// and departure are all equal.
func (m TransportMode) Rank() int {
	switch m {
	case ModeFlight:
		return 0
	case ModeTrain:
		return 1
	case ModeBus:
		return 2
	case ModeCar:
		return 3
	default:
		return 4
	}
}

// One candidate way to travel between origin and destination with
// price, time, carbon and schedule attributes.
// The full option set is immutable per Goal.
type TransportOption struct {
	Mode          TransportMode `json:"mode"`
	PriceUSD      float64       `json:"price_usd"`
	DurationHours float64       `json:"duration_hours"`
	CarbonKg      float64       `json:"carbon_kg"`
	Departure     string        `json:"departure"`
	Arrival       string        `json:"arrival"`
	Summary       string        `json:"summary"`
}
