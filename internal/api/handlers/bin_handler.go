package handlers

import (
	"strconv"

	"remat-backend/domain"
	"remat-backend/internal/api/presenters"
	"remat-backend/pkg/bin"
	"remat-backend/pkg/waste"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	BinHandler interface {
		CreateBin(c *fiber.Ctx) error
		GetBins(c *fiber.Ctx) error
		GetBin(c *fiber.Ctx) error
		UpdateBin(c *fiber.Ctx) error
		DeleteBin(c *fiber.Ctx) error
		GetNearbyBins(c *fiber.Ctx) error
		ResolveQR(c *fiber.Ctx) error
		GetBinPanel(c *fiber.Ctx) error
		ConfirmDeposit(c *fiber.Ctx) error
	}

	binHandler struct {
		binService   bin.BinService
		wasteService waste.WasteService
		validator    *validator.Validate
	}
)

func NewBinHandler(binService bin.BinService, wasteService waste.WasteService, validator *validator.Validate) BinHandler {
	return &binHandler{
		binService:   binService,
		wasteService: wasteService,
		validator:    validator,
	}
}

func (h *binHandler) CreateBin(c *fiber.Ctx) error {
	req := new(domain.CreateBinRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateBin, err)
	}

	resp, err := h.binService.CreateBin(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateBin, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusCreated, domain.MessageSuccessCreateBin)
}

func (h *binHandler) GetBins(c *fiber.Ctx) error {
	bins, err := h.binService.GetBins(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetBins, err)
	}

	return presenters.SuccessResponse(c, bins, fiber.StatusOK, domain.MessageSuccessGetBins)
}

func (h *binHandler) GetBin(c *fiber.Ctx) error {
	resp, err := h.binService.GetBinByID(c.Context(), c.Params("id"))
	if err != nil {
		status := fiber.StatusBadRequest
		if err == domain.ErrBinNotFound {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedGetBin, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGetBin)
}

func (h *binHandler) UpdateBin(c *fiber.Ctx) error {
	req := new(domain.UpdateBinRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateBin, err)
	}

	if err := h.binService.UpdateBin(c.Context(), c.Params("id"), *req); err != nil {
		status := fiber.StatusBadRequest
		if err == domain.ErrBinNotFound {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedUpdateBin, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateBin)
}

func (h *binHandler) DeleteBin(c *fiber.Ctx) error {
	if err := h.binService.DeleteBin(c.Context(), c.Params("id")); err != nil {
		status := fiber.StatusBadRequest
		if err == domain.ErrBinNotFound {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedDeleteBin, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteBin)
}

func (h *binHandler) GetNearbyBins(c *fiber.Ctx) error {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetNearbyBins, domain.ErrInvalidCoordinates)
	}

	limit, err := strconv.Atoi(c.Query("limit", "5"))
	if err != nil || limit < 1 {
		limit = 5
	}

	bins, err := h.binService.GetNearbyBins(c.Context(), lat, lng, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetNearbyBins, err)
	}

	return presenters.SuccessResponse(c, bins, fiber.StatusOK, domain.MessageSuccessGetNearbyBins)
}

// ResolveQR maps a scanned QR payload onto the bin it encodes.
func (h *binHandler) ResolveQR(c *fiber.Ctx) error {
	qrText := c.Query("text")

	resp, err := h.binService.ResolveQR(c.Context(), qrText)
	if err != nil {
		status := fiber.StatusBadRequest
		if err == domain.ErrBinNotFound {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedGetBin, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGetBin)
}

func (h *binHandler) GetBinPanel(c *fiber.Ctx) error {
	resp, err := h.binService.GetBinByID(c.Context(), c.Params("id"))
	if err != nil {
		status := fiber.StatusBadRequest
		if err == domain.ErrBinNotFound {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedGetBin, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGetBin)
}

// ConfirmDeposit records a deposit into the bin identified by the panel URL.
func (h *binHandler) ConfirmDeposit(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.ConfirmDepositRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeposit, err)
	}

	submitReq := domain.SubmitWasteRequest{
		BinID:      c.Params("id"),
		WasteType:  req.WasteType,
		Confidence: req.Confidence,
		Override:   req.Override,
	}

	resp, err := h.wasteService.SubmitWaste(c.Context(), submitReq, userID)
	if err != nil {
		status := fiber.StatusBadRequest
		if err == domain.ErrBinNotFound {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedDeposit, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessDeposit)
}
