package handlers

import (
	"galeana-pepper/domain"
	"galeana-pepper/internal/api/presenters"
	"galeana-pepper/pkg/pesaje"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PesajeHandler interface {
		ColaPrimerPesaje(c *fiber.Ctx) error
		ColaSegundoPesaje(c *fiber.Ctx) error
		IniciarPrimerPesaje(c *fiber.Ctx) error
		RegistrarPrimerPesaje(c *fiber.Ctx) error
		RegistrarSegundoPesaje(c *fiber.Ctx) error
	}

	pesajeHandler struct {
		pesajeService pesaje.PesajeService
		validator     *validator.Validate
	}
)

func NewPesajeHandler(pesajeService pesaje.PesajeService, validator *validator.Validate) PesajeHandler {
	return &pesajeHandler{
		pesajeService: pesajeService,
		validator:     validator,
	}
}

func (h *pesajeHandler) ColaPrimerPesaje(c *fiber.Ctx) error {
	cola, err := h.pesajeService.ColaPrimerPesaje(c.Context())
	if err != nil {
		return failed(c, domain.MessageFailedGetColaPesaje, err)
	}

	return presenters.SuccessResponse(c, cola, fiber.StatusOK, domain.MessageSuccessGetColaPesaje)
}

func (h *pesajeHandler) ColaSegundoPesaje(c *fiber.Ctx) error {
	cola, err := h.pesajeService.ColaSegundoPesaje(c.Context())
	if err != nil {
		return failed(c, domain.MessageFailedGetColaPesaje, err)
	}

	return presenters.SuccessResponse(c, cola, fiber.StatusOK, domain.MessageSuccessGetColaPesaje)
}

func (h *pesajeHandler) IniciarPrimerPesaje(c *fiber.Ctx) error {
	folio, err := parseFolio(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidFolio, err)
	}

	resp, err := h.pesajeService.IniciarPrimerPesaje(c.Context(), folio, actor(c))
	if err != nil {
		return failed(c, domain.MessageFailedIniciarPesaje, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessIniciarPesaje)
}

func (h *pesajeHandler) RegistrarPrimerPesaje(c *fiber.Ctx) error {
	folio, err := parseFolio(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidFolio, err)
	}

	req := new(domain.PesajeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPrimerPesaje, err)
	}

	resp, err := h.pesajeService.RegistrarPrimerPesaje(c.Context(), folio, *req, actor(c))
	if err != nil {
		return failed(c, domain.MessageFailedPrimerPesaje, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessPrimerPesaje)
}

func (h *pesajeHandler) RegistrarSegundoPesaje(c *fiber.Ctx) error {
	folio, err := parseFolio(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidFolio, err)
	}

	req := new(domain.PesajeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSegundoPesaje, err)
	}

	resp, err := h.pesajeService.RegistrarSegundoPesaje(c.Context(), folio, *req, actor(c))
	if err != nil {
		return failed(c, domain.MessageFailedSegundoPesaje, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessSegundoPesaje)
}
