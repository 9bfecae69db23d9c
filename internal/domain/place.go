package domain

// A named location resolved to coordinates.
type Place struct {
	Name   string      `json:"name"`
	Coords Coordinates `json:"coords"`
}

// Structured travel request (origin, destination, day count, theme)
// derived from free-form goal text.
// A Goal is immutable once a plan has been generated from it.
type Goal struct {
	Origin      Place  `json:"origin"`
	Destination Place  `json:"destination"`
	Days        int    `json:"days"`
	Theme       string `json:"theme,omitempty"`
}
