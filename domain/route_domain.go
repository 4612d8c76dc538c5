package domain

import (
	"errors"
)

var (
	MessageSuccessOptimizeRoute = "route computed successfully"
	MessageFailedOptimizeRoute  = "failed to compute route"

	ErrNoStopsProvided    = errors.New("no bins provided")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)

type (
	LatLng struct {
		Latitude  float64 `json:"lat" validate:"min=-90,max=90"`
		Longitude float64 `json:"lng" validate:"min=-180,max=180"`
	}

	OptimizeRouteRequest struct {
		Start LatLng   `json:"start" validate:"required"`
		Bins  []LatLng `json:"bins" validate:"required,min=1,dive"`
	}

	OptimizeRouteResponse struct {
		Path       []LatLng `json:"path"`
		Stops      []LatLng `json:"stops"`
		DistanceKm float64  `json:"distance_km"`
		// true when OSRM was unreachable and the path is the straight
		// stop sequence rather than a road polyline
		Approximate bool `json:"approximate"`
	}
)
