package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"remat-backend/domain"
	"remat-backend/internal/utils"
)

const defaultNominatimBaseURL = "https://nominatim.openstreetmap.org"

type (
	GeocodeService interface {
		Search(ctx context.Context, query string, limit int) ([]domain.AddressSuggestion, error)
		Reverse(ctx context.Context, lat, lng float64) (domain.ReverseGeocodeResult, error)
	}

	geocodeService struct {
		baseURL    string
		httpClient *http.Client
	}

	nominatimPlace struct {
		PlaceID     int64  `json:"place_id"`
		DisplayName string `json:"display_name"`
		Lat         string `json:"lat"`
		Lon         string `json:"lon"`
	}
)

func NewGeocodeService() GeocodeService {
	baseURL := utils.GetConfig("NOMINATIM_BASE_URL")
	if baseURL == "" {
		baseURL = defaultNominatimBaseURL
	}

	return &geocodeService{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Search runs a forward Nominatim lookup. Failures are swallowed into an
// empty suggestion list; search-as-you-type callers treat errors and "no
// match" the same way.
func (s *geocodeService) Search(ctx context.Context, query string, limit int) ([]domain.AddressSuggestion, error) {
	if len(query) < 3 {
		return []domain.AddressSuggestion{}, nil
	}
	if limit < 1 || limit > 10 {
		limit = 5
	}

	reqURL := fmt.Sprintf(
		"%s/search?format=json&limit=%d&q=%s",
		s.baseURL, limit, url.QueryEscape(query),
	)

	var places []nominatimPlace
	if err := s.getJSON(ctx, reqURL, &places); err != nil {
		return []domain.AddressSuggestion{}, nil
	}

	suggestions := make([]domain.AddressSuggestion, 0, len(places))
	for _, p := range places {
		lat, errLat := strconv.ParseFloat(p.Lat, 64)
		lng, errLon := strconv.ParseFloat(p.Lon, 64)
		if errLat != nil || errLon != nil {
			continue
		}
		suggestions = append(suggestions, domain.AddressSuggestion{
			PlaceID:     p.PlaceID,
			DisplayName: p.DisplayName,
			Latitude:    lat,
			Longitude:   lng,
		})
	}

	return suggestions, nil
}

func (s *geocodeService) Reverse(ctx context.Context, lat, lng float64) (domain.ReverseGeocodeResult, error) {
	reqURL := fmt.Sprintf(
		"%s/reverse?format=json&lat=%f&lon=%f",
		s.baseURL, lat, lng,
	)

	var place nominatimPlace
	if err := s.getJSON(ctx, reqURL, &place); err != nil {
		return domain.ReverseGeocodeResult{}, err
	}

	if place.DisplayName == "" {
		return domain.ReverseGeocodeResult{}, domain.ErrAddressNotFound
	}

	return domain.ReverseGeocodeResult{
		DisplayName: place.DisplayName,
		Latitude:    lat,
		Longitude:   lng,
	}, nil
}

func (s *geocodeService) getJSON(ctx context.Context, reqURL string, out interface{}) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}
	// Nominatim's usage policy requires an identifying user agent.
	httpReq.Header.Set("User-Agent", "remat-backend/1.0")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("geocoding request failed: %s", resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
