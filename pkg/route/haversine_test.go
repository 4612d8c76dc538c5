package route

import (
	"math"
	"testing"

	"remat-backend/domain"
)

func TestHaversine(t *testing.T) {
	// 0.1 degrees of latitude is roughly 11.1 km anywhere on the globe.
	a := domain.LatLng{Latitude: -6.2, Longitude: 106.8}
	b := domain.LatLng{Latitude: -6.3, Longitude: 106.8}

	got := Haversine(a, b)
	if math.Abs(got-11.1) > 0.2 {
		t.Errorf("Haversine over 0.1 deg latitude = %f km, want about 11.1", got)
	}

	if d := Haversine(a, a); d != 0 {
		t.Errorf("Haversine(a, a) = %f, want 0", d)
	}

	if d1, d2 := Haversine(a, b), Haversine(b, a); math.Abs(d1-d2) > 1e-9 {
		t.Errorf("Haversine not symmetric: %f vs %f", d1, d2)
	}
}

func TestOrderStops(t *testing.T) {
	start := domain.LatLng{Latitude: 0, Longitude: 0}
	far := domain.LatLng{Latitude: 0, Longitude: 3}
	mid := domain.LatLng{Latitude: 0, Longitude: 2}
	near := domain.LatLng{Latitude: 0, Longitude: 1}

	ordered := OrderStops(start, []domain.LatLng{far, mid, near})

	want := []domain.LatLng{near, mid, far}
	if len(ordered) != len(want) {
		t.Fatalf("OrderStops returned %d stops, want %d", len(ordered), len(want))
	}
	for i := range want {
		if ordered[i] != want[i] {
			t.Errorf("stop %d = %+v, want %+v", i, ordered[i], want[i])
		}
	}
}

func TestOrderStopsDoesNotMutateInput(t *testing.T) {
	start := domain.LatLng{Latitude: 0, Longitude: 0}
	stops := []domain.LatLng{
		{Latitude: 0, Longitude: 2},
		{Latitude: 0, Longitude: 1},
	}

	OrderStops(start, stops)

	if stops[0].Longitude != 2 || stops[1].Longitude != 1 {
		t.Error("OrderStops mutated its input slice")
	}
}

func TestPathDistance(t *testing.T) {
	points := []domain.LatLng{
		{Latitude: 0, Longitude: 0},
		{Latitude: 0, Longitude: 1},
		{Latitude: 0, Longitude: 2},
	}

	total := PathDistance(points)
	direct := Haversine(points[0], points[2])

	if math.Abs(total-direct) > 0.01 {
		t.Errorf("PathDistance along a straight line = %f, want %f", total, direct)
	}

	if d := PathDistance(points[:1]); d != 0 {
		t.Errorf("PathDistance of a single point = %f, want 0", d)
	}
}
