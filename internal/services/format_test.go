package services

import (
	"strings"
	"testing"
	"travel-planner-service/internal/domain"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1234.6, "$1,235"},
		{0, "$0"},
		{999, "$999"},
		{1000, "$1,000"},
		{1234567, "$1,234,567"},
		{-42, "-$42"},
	}
	for _, c := range cases {
		if got := FormatCurrency(c.in); got != c.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{8, "8h"},
		{7.5, "7h 30m"},
		{0.75, "45m"},
		{0, "0m"},
	}
	for _, c := range cases {
		if got := FormatDuration(c.in); got != c.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatCarbon(t *testing.T) {
	if got := FormatCarbon(411.8); got != "~412 kg CO2" {
		t.Fatalf("FormatCarbon = %q", got)
	}
}

func TestFormatStopTiming(t *testing.T) {
	stop := domain.Stop{ArriveMin: 540, DepartMin: 660}
	if got := FormatStopTiming(stop); got != "09:00 - 11:00" {
		t.Fatalf("FormatStopTiming = %q", got)
	}
}

func TestExplainEditImpact(t *testing.T) {
	for _, kind := range []string{"swap", "remove", "duration", "other"} {
		if msg := ExplainEditImpact(kind); msg == "" || !strings.HasSuffix(msg, ".") {
			t.Errorf("ExplainEditImpact(%q) = %q", kind, msg)
		}
	}
}
