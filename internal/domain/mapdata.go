package domain

// Kind tag for a map node.
type MapNodeType string

const (
	NodeOrigin      MapNodeType = "origin"
	NodeDestination MapNodeType = "destination"
	NodeStop        MapNodeType = "stop"
)

// One renderable marker. Stop nodes carry day and order for tooltips.
type MapNode struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Lat   float64     `json:"lat"`
	Lng   float64     `json:"lng"`
	Type  MapNodeType `json:"type"`
	Day   int         `json:"day,omitempty"`
	Order int         `json:"order,omitempty"`
}

// One directed renderable edge, colored by day (or the inbound leg color).
type MapLeg struct {
	ID    string      `json:"id"`
	From  Coordinates `json:"from"`
	To    Coordinates `json:"to"`
	Color string      `json:"color"`
	Label string      `json:"label"`
}

// Geometry (nodes, legs) derived wholesale from a TravelPlan for
// spatial rendering. MapData is never stored independently, so it
// cannot drift from the stop sequence that produced it.
type MapData struct {
	Nodes []MapNode `json:"nodes"`
	Legs  []MapLeg  `json:"legs"`
}
