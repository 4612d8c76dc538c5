package handlers

import (
	"strconv"

	"remat-backend/domain"
	"remat-backend/internal/api/presenters"
	"remat-backend/pkg/geocode"

	"github.com/gofiber/fiber/v2"
)

type (
	GeocodeHandler interface {
		Search(c *fiber.Ctx) error
		Reverse(c *fiber.Ctx) error
	}

	geocodeHandler struct {
		geocodeService geocode.GeocodeService
	}
)

func NewGeocodeHandler(geocodeService geocode.GeocodeService) GeocodeHandler {
	return &geocodeHandler{geocodeService: geocodeService}
}

func (h *geocodeHandler) Search(c *fiber.Ctx) error {
	query := c.Query("q")

	limit, err := strconv.Atoi(c.Query("limit", "5"))
	if err != nil {
		limit = 5
	}

	suggestions, err := h.geocodeService.Search(c.Context(), query, limit)
	if err != nil {
		return presenters.SuccessResponse(c, []domain.AddressSuggestion{}, fiber.StatusOK, domain.MessageSuccessGeocodeSearch)
	}

	return presenters.SuccessResponse(c, suggestions, fiber.StatusOK, domain.MessageSuccessGeocodeSearch)
}

func (h *geocodeHandler) Reverse(c *fiber.Ctx) error {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGeocodeReverse, domain.ErrInvalidCoordinates)
	}

	resp, err := h.geocodeService.Reverse(c.Context(), lat, lng)
	if err != nil {
		status := fiber.StatusBadRequest
		if err == domain.ErrAddressNotFound {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedGeocodeReverse, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGeocodeReverse)
}
