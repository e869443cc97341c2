package handlers

import (
	"galeana-pepper/domain"
	"galeana-pepper/internal/api/presenters"
	"galeana-pepper/pkg/descarga"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DescargaHandler interface {
		ColaDescarga(c *fiber.Ctx) error
		DescargaActiva(c *fiber.Ctx) error
		IniciarDescarga(c *fiber.Ctx) error
		AceptarDescarga(c *fiber.Ctx) error
		RechazarDescarga(c *fiber.Ctx) error
	}

	descargaHandler struct {
		descargaService descarga.DescargaService
		validator       *validator.Validate
	}
)

func NewDescargaHandler(descargaService descarga.DescargaService, validator *validator.Validate) DescargaHandler {
	return &descargaHandler{
		descargaService: descargaService,
		validator:       validator,
	}
}

func (h *descargaHandler) ColaDescarga(c *fiber.Ctx) error {
	cola, err := h.descargaService.ColaDescarga(c.Context())
	if err != nil {
		return failed(c, domain.MessageFailedGetProductos, err)
	}

	return presenters.SuccessResponse(c, cola, fiber.StatusOK, domain.MessageSuccessGetProductos)
}

func (h *descargaHandler) DescargaActiva(c *fiber.Ctx) error {
	activa, err := h.descargaService.DescargaActiva(c.Context())
	if err != nil {
		return failed(c, domain.MessageFailedDescargaActiva, err)
	}

	return presenters.SuccessResponse(c, activa, fiber.StatusOK, domain.MessageSuccessDescargaActiva)
}

func (h *descargaHandler) IniciarDescarga(c *fiber.Ctx) error {
	folio, err := parseFolio(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidFolio, err)
	}

	resp, err := h.descargaService.IniciarDescarga(c.Context(), folio, actor(c))
	if err != nil {
		return failed(c, domain.MessageFailedIniciarDescarga, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessIniciarDescarga)
}

func (h *descargaHandler) AceptarDescarga(c *fiber.Ctx) error {
	folio, err := parseFolio(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidFolio, err)
	}

	resp, err := h.descargaService.AceptarDescarga(c.Context(), folio, actor(c))
	if err != nil {
		return failed(c, domain.MessageFailedAceptarDescarga, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessAceptarDescarga)
}

func (h *descargaHandler) RechazarDescarga(c *fiber.Ctx) error {
	folio, err := parseFolio(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidFolio, err)
	}

	req := new(domain.RechazarDescargaRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRechazarDescarga, err)
	}

	resp, err := h.descargaService.RechazarDescarga(c.Context(), folio, *req, actor(c))
	if err != nil {
		return failed(c, domain.MessageFailedRechazarDescarga, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessRechazarDescarga)
}
