package route

import (
	"math"

	"remat-backend/domain"
)

const earthRadiusKm = 6371

// Haversine returns the great-circle distance between two points in km.
func Haversine(a, b domain.LatLng) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lon1 := a.Longitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	lon2 := b.Longitude * math.Pi / 180

	dlat := lat2 - lat1
	dlon := lon2 - lon1

	h := math.Pow(math.Sin(dlat/2), 2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dlon/2), 2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// OrderStops orders the stops by greedy nearest-neighbour walk from start.
func OrderStops(start domain.LatLng, stops []domain.LatLng) []domain.LatLng {
	ordered := make([]domain.LatLng, 0, len(stops))
	remaining := make([]domain.LatLng, len(stops))
	copy(remaining, stops)

	current := start
	for len(remaining) > 0 {
		nearestIdx := 0
		nearestDist := Haversine(current, remaining[0])
		for i := 1; i < len(remaining); i++ {
			if d := Haversine(current, remaining[i]); d < nearestDist {
				nearestIdx = i
				nearestDist = d
			}
		}

		current = remaining[nearestIdx]
		ordered = append(ordered, current)
		remaining = append(remaining[:nearestIdx], remaining[nearestIdx+1:]...)
	}

	return ordered
}

// PathDistance sums the leg distances of an ordered point sequence in km.
func PathDistance(points []domain.LatLng) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += Haversine(points[i-1], points[i])
	}
	return total
}
