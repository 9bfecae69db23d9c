package domain

import "testing"

func TestDistanceKm(t *testing.T) {
	delhi := Coordinates{Lat: 28.6139, Lng: 77.2090}
	tokyo := Coordinates{Lat: 35.6764, Lng: 139.6503}

	d := delhi.DistanceKm(tokyo)
	if d < 5700 || d > 6000 {
		t.Fatalf("Delhi-Tokyo distance = %.0f km, want ~5840", d)
	}

	if back := tokyo.DistanceKm(delhi); back != d {
		t.Fatalf("distance not symmetric: %v vs %v", d, back)
	}

	if self := delhi.DistanceKm(delhi); self != 0 {
		t.Fatalf("self distance = %v, want 0", self)
	}
}
