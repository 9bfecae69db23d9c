package services

import "testing"

func TestInterpretGoalScenario(t *testing.T) {
	draft := InterpretGoal("Plan a 2-day trip to Tokyo from New Delhi")

	if draft.Days != 2 {
		t.Fatalf("days = %d, want 2", draft.Days)
	}
	if draft.DestinationName != "Tokyo" {
		t.Fatalf("destination = %q, want Tokyo", draft.DestinationName)
	}
	if draft.OriginName != "New Delhi" {
		t.Fatalf("origin = %q, want New Delhi", draft.OriginName)
	}
}

func TestInterpretGoalDefaults(t *testing.T) {
	draft := InterpretGoal("")

	if draft.Days != DefaultDays {
		t.Fatalf("days = %d, want %d", draft.Days, DefaultDays)
	}
	if draft.OriginName != DefaultOrigin {
		t.Fatalf("origin = %q, want %q", draft.OriginName, DefaultOrigin)
	}
	if draft.DestinationName != DefaultDestination {
		t.Fatalf("destination = %q, want %q", draft.DestinationName, DefaultDestination)
	}
	if draft.Theme != "" {
		t.Fatalf("theme = %q, want empty", draft.Theme)
	}
}

func TestInterpretGoalThemeAndMultiWordPlaces(t *testing.T) {
	draft := InterpretGoal("5-day food tour to Paris from London")

	if draft.Days != 5 {
		t.Fatalf("days = %d, want 5", draft.Days)
	}
	if draft.Theme != "food" {
		t.Fatalf("theme = %q, want food", draft.Theme)
	}
	if draft.DestinationName != "Paris" {
		t.Fatalf("destination = %q, want Paris", draft.DestinationName)
	}
	if draft.OriginName != "London" {
		t.Fatalf("origin = %q, want London", draft.OriginName)
	}
}

func TestInterpretGoalClampsDayCount(t *testing.T) {
	if d := InterpretGoal("Plan a 99 day expedition to Tokyo").Days; d != MaxDays {
		t.Fatalf("days = %d, want clamped to %d", d, MaxDays)
	}
	if d := InterpretGoal("Plan a 0 day trip to Tokyo").Days; d != MinDays {
		t.Fatalf("days = %d, want clamped to %d", d, MinDays)
	}
}

func TestInterpretGoalIgnoresLowercasePlaces(t *testing.T) {
	draft := InterpretGoal("plan a trip to the mountains")

	if draft.DestinationName != DefaultDestination {
		t.Fatalf("destination = %q, want default %q", draft.DestinationName, DefaultDestination)
	}
}
