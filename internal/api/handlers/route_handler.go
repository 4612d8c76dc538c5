package handlers

import (
	"remat-backend/domain"
	"remat-backend/internal/api/presenters"
	"remat-backend/pkg/route"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RouteHandler interface {
		OptimizeRoute(c *fiber.Ctx) error
	}

	routeHandler struct {
		routeService route.RouteService
		validator    *validator.Validate
	}
)

func NewRouteHandler(routeService route.RouteService, validator *validator.Validate) RouteHandler {
	return &routeHandler{
		routeService: routeService,
		validator:    validator,
	}
}

func (h *routeHandler) OptimizeRoute(c *fiber.Ctx) error {
	req := new(domain.OptimizeRouteRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedOptimizeRoute, err)
	}

	resp, err := h.routeService.OptimizeRoute(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedOptimizeRoute, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessOptimizeRoute)
}
