package handlers

import (
	"galeana-pepper/domain"
	"galeana-pepper/internal/api/presenters"
	"galeana-pepper/pkg/embarque"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	EmbarqueHandler interface {
		RegistrarSalida(c *fiber.Ctx) error
		GetEmbarques(c *fiber.Ctx) error
	}

	embarqueHandler struct {
		embarqueService embarque.EmbarqueService
		validator       *validator.Validate
	}
)

func NewEmbarqueHandler(embarqueService embarque.EmbarqueService, validator *validator.Validate) EmbarqueHandler {
	return &embarqueHandler{
		embarqueService: embarqueService,
		validator:       validator,
	}
}

func (h *embarqueHandler) RegistrarSalida(c *fiber.Ctx) error {
	req := new(domain.RegistrarSalidaRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegistrarSalida, err)
	}

	resp, err := h.embarqueService.RegistrarSalida(c.Context(), *req, actor(c))
	if err != nil {
		return failed(c, domain.MessageFailedRegistrarSalida, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusCreated, domain.MessageSuccessRegistrarSalida)
}

func (h *embarqueHandler) GetEmbarques(c *fiber.Ctx) error {
	page, limit := parsePagination(c, domain.DefaultPageLimit)

	embarques, count, err := h.embarqueService.GetEmbarques(c.Context(), page, limit)
	if err != nil {
		return failed(c, domain.MessageFailedGetEmbarques, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items":      embarques,
		"pagination": domain.NewPagination(page, limit, count),
	}, fiber.StatusOK, domain.MessageSuccessGetEmbarques)
}
