package route

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"remat-backend/domain"
	"remat-backend/internal/utils"
)

const defaultOSRMBaseURL = "http://router.project-osrm.org"

type (
	RouteService interface {
		OptimizeRoute(ctx context.Context, req domain.OptimizeRouteRequest) (domain.OptimizeRouteResponse, error)
	}

	routeService struct {
		osrmBaseURL string
		httpClient  *http.Client
	}
)

func NewRouteService() RouteService {
	baseURL := utils.GetConfig("OSRM_BASE_URL")
	if baseURL == "" {
		baseURL = defaultOSRMBaseURL
	}

	return &routeService{
		osrmBaseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

// OptimizeRoute orders the requested stops by nearest-neighbour and asks
// OSRM for the road polyline through them. When OSRM cannot be reached the
// straight stop sequence is returned instead of failing the request; the
// client only loses the road-shaped path, not the ordering.
func (s *routeService) OptimizeRoute(ctx context.Context, req domain.OptimizeRouteRequest) (domain.OptimizeRouteResponse, error) {
	if len(req.Bins) == 0 {
		return domain.OptimizeRouteResponse{}, domain.ErrNoStopsProvided
	}

	ordered := OrderStops(req.Start, req.Bins)
	stops := append([]domain.LatLng{req.Start}, ordered...)

	path, distanceKm, err := s.fetchRoadRoute(ctx, stops)
	if err != nil {
		return domain.OptimizeRouteResponse{
			Path:        stops,
			Stops:       stops,
			DistanceKm:  PathDistance(stops),
			Approximate: true,
		}, nil
	}

	return domain.OptimizeRouteResponse{
		Path:       path,
		Stops:      stops,
		DistanceKm: distanceKm,
	}, nil
}

func (s *routeService) fetchRoadRoute(ctx context.Context, points []domain.LatLng) ([]domain.LatLng, float64, error) {
	coords := make([]string, 0, len(points))
	for _, p := range points {
		coords = append(coords, fmt.Sprintf("%f,%f", p.Longitude, p.Latitude))
	}

	url := fmt.Sprintf(
		"%s/route/v1/driving/%s?overview=full&geometries=geojson",
		s.osrmBaseURL,
		strings.Join(coords, ";"),
	)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, err
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, 0, fmt.Errorf("OSRM request failed: %s", resp.Status)
	}

	var osrmResp struct {
		Routes []struct {
			Distance float64 `json:"distance"` // meters
			Geometry struct {
				Coordinates [][]float64 `json:"coordinates"` // [lng, lat]
			} `json:"geometry"`
		} `json:"routes"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&osrmResp); err != nil {
		return nil, 0, err
	}

	if len(osrmResp.Routes) == 0 {
		return nil, 0, fmt.Errorf("no route found")
	}

	best := osrmResp.Routes[0]
	path := make([]domain.LatLng, 0, len(best.Geometry.Coordinates))
	for _, c := range best.Geometry.Coordinates {
		if len(c) < 2 {
			continue
		}
		path = append(path, domain.LatLng{Latitude: c[1], Longitude: c[0]})
	}

	return path, best.Distance / 1000, nil
}
