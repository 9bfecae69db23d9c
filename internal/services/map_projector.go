package services

import (
	"fmt"
	"travel-planner-service/internal/domain"
)

// Color of the inbound origin->destination leg (independent of the
// selected transport mode, so mode changes never touch the map).
const inboundLegColor = "#0f172a"

// ProjectMap derives renderable geometry from the current plan: one
// node per origin, destination and scheduled stop, one leg for the
// inbound transport plus one per consecutive stop pair within each day,
// colored by day.
//
// A pure function of plan state recomputed wholesale on every change;
// it holds no storage of its own and therefore cannot drift.
func ProjectMap(plan domain.TravelPlan) domain.MapData {
	var m domain.MapData

	m.Nodes = append(m.Nodes,
		domain.MapNode{
			ID:   "origin",
			Name: plan.Goal.Origin.Name,
			Lat:  plan.Goal.Origin.Coords.Lat,
			Lng:  plan.Goal.Origin.Coords.Lng,
			Type: domain.NodeOrigin,
		},
		domain.MapNode{
			ID:   "destination",
			Name: plan.Goal.Destination.Name,
			Lat:  plan.Goal.Destination.Coords.Lat,
			Lng:  plan.Goal.Destination.Coords.Lng,
			Type: domain.NodeDestination,
		},
	)

	m.Legs = append(m.Legs, domain.MapLeg{
		ID:    "leg-inbound",
		From:  plan.Goal.Origin.Coords,
		To:    plan.Goal.Destination.Coords,
		Color: inboundLegColor,
		Label: fmt.Sprintf("%s to %s", plan.Goal.Origin.Name, plan.Goal.Destination.Name),
	})

	for _, day := range plan.Itinerary {
		for i, stop := range day.Stops {
			m.Nodes = append(m.Nodes, domain.MapNode{
				ID:    "stop-" + stop.ID,
				Name:  stop.Name,
				Lat:   stop.Coords.Lat,
				Lng:   stop.Coords.Lng,
				Type:  domain.NodeStop,
				Day:   day.Day,
				Order: stop.Order,
			})

			if i == 0 {
				continue
			}
			prev := day.Stops[i-1]
			m.Legs = append(m.Legs, domain.MapLeg{
				ID:    fmt.Sprintf("leg-d%d-%d", day.Day, i),
				From:  prev.Coords,
				To:    stop.Coords,
				Color: day.Color,
				Label: fmt.Sprintf("Day %d: %s to %s", day.Day, prev.Name, stop.Name),
			})
		}
	}

	return m
}
