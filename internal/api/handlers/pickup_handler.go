package handlers

import (
	"remat-backend/domain"
	"remat-backend/internal/api/presenters"
	"remat-backend/pkg/pickup"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PickupHandler interface {
		CreatePickup(c *fiber.Ctx) error
		GetUserPickups(c *fiber.Ctx) error
		GetUserPickupDetails(c *fiber.Ctx) error
		UpdateLocation(c *fiber.Ctx) error
		DeletePickup(c *fiber.Ctx) error

		GetAllPickups(c *fiber.Ctx) error
		GetPickupDetails(c *fiber.Ctx) error
		AcceptPickup(c *fiber.Ctx) error
		RejectPickup(c *fiber.Ctx) error
	}

	pickupHandler struct {
		pickupService pickup.PickupService
		validator     *validator.Validate
	}
)

func NewPickupHandler(pickupService pickup.PickupService, validator *validator.Validate) PickupHandler {
	return &pickupHandler{
		pickupService: pickupService,
		validator:     validator,
	}
}

func pickupErrorStatus(err error) int {
	switch err {
	case domain.ErrPickupNotFound:
		return fiber.StatusNotFound
	case domain.ErrUnauthorizedPickupAccess:
		return fiber.StatusForbidden
	case domain.ErrPickupNotOpen, domain.ErrPickupAlreadyProcessed:
		return fiber.StatusConflict
	default:
		return fiber.StatusBadRequest
	}
}

func (h *pickupHandler) CreatePickup(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.CreatePickupRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if image, err := c.FormFile("image"); err == nil {
		req.Image = image
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePickup, err)
	}

	resp, err := h.pickupService.CreatePickup(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePickup, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusCreated, domain.MessageSuccessCreatePickup)
}

func (h *pickupHandler) GetUserPickups(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	pickups, err := h.pickupService.GetUserPickups(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPickups, err)
	}

	return presenters.SuccessResponse(c, pickups, fiber.StatusOK, domain.MessageSuccessGetPickups)
}

func (h *pickupHandler) GetUserPickupDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	resp, err := h.pickupService.GetUserPickupDetails(c.Context(), c.Params("id"), userID)
	if err != nil {
		return presenters.ErrorResponse(c, pickupErrorStatus(err), domain.MessageFailedGetPickup, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGetPickup)
}

func (h *pickupHandler) UpdateLocation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.UpdatePickupLocationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateLocation, err)
	}

	resp, err := h.pickupService.UpdateLocation(c.Context(), c.Params("id"), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, pickupErrorStatus(err), domain.MessageFailedUpdateLocation, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessUpdateLocation)
}

func (h *pickupHandler) DeletePickup(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.pickupService.DeletePickup(c.Context(), c.Params("id"), userID); err != nil {
		return presenters.ErrorResponse(c, pickupErrorStatus(err), domain.MessageFailedDeletePickup, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeletePickup)
}

func (h *pickupHandler) GetAllPickups(c *fiber.Ctx) error {
	pickups, err := h.pickupService.GetAllPickups(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPickups, err)
	}

	return presenters.SuccessResponse(c, pickups, fiber.StatusOK, domain.MessageSuccessGetPickups)
}

func (h *pickupHandler) GetPickupDetails(c *fiber.Ctx) error {
	resp, err := h.pickupService.GetPickupDetails(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, pickupErrorStatus(err), domain.MessageFailedGetPickup, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGetPickup)
}

func (h *pickupHandler) AcceptPickup(c *fiber.Ctx) error {
	adminID := c.Locals("user_id").(string)

	req := new(domain.AcceptPickupRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAcceptPickup, err)
	}

	if err := h.pickupService.AcceptPickup(c.Context(), c.Params("id"), *req, adminID); err != nil {
		return presenters.ErrorResponse(c, pickupErrorStatus(err), domain.MessageFailedAcceptPickup, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessAcceptPickup)
}

func (h *pickupHandler) RejectPickup(c *fiber.Ctx) error {
	adminID := c.Locals("user_id").(string)

	req := new(domain.RejectPickupRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRejectPickup, err)
	}

	if err := h.pickupService.RejectPickup(c.Context(), c.Params("id"), *req, adminID); err != nil {
		return presenters.ErrorResponse(c, pickupErrorStatus(err), domain.MessageFailedRejectPickup, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRejectPickup)
}
