package services

import (
	"fmt"
	"reflect"
	"testing"
	"travel-planner-service/internal/domain"
)

func TestProjectMapGeometry(t *testing.T) {
	plan := editFixture()
	m := plan.Map

	scheduled := 0
	legs := 1 // inbound
	for _, day := range plan.Itinerary {
		scheduled += len(day.Stops)
		if n := len(day.Stops); n > 1 {
			legs += n - 1
		}
	}

	if len(m.Nodes) != 2+scheduled {
		t.Fatalf("map has %d nodes, want %d", len(m.Nodes), 2+scheduled)
	}
	if len(m.Legs) != legs {
		t.Fatalf("map has %d legs, want %d", len(m.Legs), legs)
	}

	if m.Nodes[0].Type != domain.NodeOrigin || m.Nodes[1].Type != domain.NodeDestination {
		t.Fatalf("first two nodes are %s and %s", m.Nodes[0].Type, m.Nodes[1].Type)
	}
	if m.Legs[0].ID != "leg-inbound" || m.Legs[0].Color != inboundLegColor {
		t.Fatalf("inbound leg = %+v", m.Legs[0])
	}
}

func TestProjectMapLegsFollowDayColor(t *testing.T) {
	plan := editFixture()

	colors := make(map[int]string)
	for _, day := range plan.Itinerary {
		colors[day.Day] = day.Color
	}

	for _, leg := range plan.Map.Legs[1:] {
		var day, seq int
		if _, err := fmt.Sscanf(leg.ID, "leg-d%d-%d", &day, &seq); err != nil {
			t.Fatalf("unexpected leg id %q: %v", leg.ID, err)
		}
		if leg.Color != colors[day] {
			t.Fatalf("leg %s colored %s, want day color %s", leg.ID, leg.Color, colors[day])
		}
	}
}

func TestProjectMapStopNodesCarryDayAndOrder(t *testing.T) {
	plan := editFixture()

	byID := make(map[string]domain.MapNode)
	for _, n := range plan.Map.Nodes {
		byID[n.ID] = n
	}

	for _, day := range plan.Itinerary {
		for _, s := range day.Stops {
			node, ok := byID["stop-"+s.ID]
			if !ok {
				t.Fatalf("no node for scheduled stop %s", s.ID)
			}
			if node.Day != day.Day || node.Order != s.Order {
				t.Fatalf("node %s day/order = %d/%d, want %d/%d",
					node.ID, node.Day, node.Order, day.Day, s.Order)
			}
		}
	}
}

func TestProjectMapIsPure(t *testing.T) {
	plan := editFixture()

	if !reflect.DeepEqual(ProjectMap(plan), ProjectMap(plan)) {
		t.Fatalf("repeated projection differs")
	}
}
