package handlers

import (
	"remat-backend/domain"
	"remat-backend/internal/api/presenters"
	"remat-backend/pkg/waste"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	WasteHandler interface {
		DetectWaste(c *fiber.Ctx) error
		SubmitWaste(c *fiber.Ctx) error
	}

	wasteHandler struct {
		wasteService waste.WasteService
		validator    *validator.Validate
	}
)

func NewWasteHandler(wasteService waste.WasteService, validator *validator.Validate) WasteHandler {
	return &wasteHandler{
		wasteService: wasteService,
		validator:    validator,
	}
}

func (h *wasteHandler) DetectWaste(c *fiber.Ctx) error {
	image, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDetectWaste, domain.ErrImageRequired)
	}

	result, err := h.wasteService.DetectWaste(c.Context(), image)
	if err != nil {
		status := fiber.StatusBadRequest
		if err == domain.ErrDetectorUnavailable {
			status = fiber.StatusServiceUnavailable
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedDetectWaste, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessDetectWaste)
}

func (h *wasteHandler) SubmitWaste(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.SubmitWasteRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSubmitWaste, err)
	}

	resp, err := h.wasteService.SubmitWaste(c.Context(), *req, userID)
	if err != nil {
		status := fiber.StatusBadRequest
		if err == domain.ErrBinNotFound {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedSubmitWaste, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessSubmitWaste)
}
