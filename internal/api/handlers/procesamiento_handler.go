package handlers

import (
	"galeana-pepper/domain"
	"galeana-pepper/internal/api/presenters"
	"galeana-pepper/pkg/procesamiento"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ProcesamientoHandler interface {
		ColaProceso(c *fiber.Ctx) error
		IniciarProceso(c *fiber.Ctx) error
		RegistrarProceso(c *fiber.Ctx) error
	}

	procesamientoHandler struct {
		procesamientoService procesamiento.ProcesamientoService
		validator            *validator.Validate
	}
)

func NewProcesamientoHandler(procesamientoService procesamiento.ProcesamientoService, validator *validator.Validate) ProcesamientoHandler {
	return &procesamientoHandler{
		procesamientoService: procesamientoService,
		validator:            validator,
	}
}

func (h *procesamientoHandler) ColaProceso(c *fiber.Ctx) error {
	cola, err := h.procesamientoService.ColaProceso(c.Context())
	if err != nil {
		return failed(c, domain.MessageFailedGetProductos, err)
	}

	return presenters.SuccessResponse(c, cola, fiber.StatusOK, domain.MessageSuccessGetProductos)
}

func (h *procesamientoHandler) IniciarProceso(c *fiber.Ctx) error {
	folio, err := parseFolio(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidFolio, err)
	}

	resp, err := h.procesamientoService.IniciarProceso(c.Context(), folio, actor(c))
	if err != nil {
		return failed(c, domain.MessageFailedIniciarProceso, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessIniciarProceso)
}

func (h *procesamientoHandler) RegistrarProceso(c *fiber.Ctx) error {
	folio, err := parseFolio(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidFolio, err)
	}

	req := new(domain.RegistrarProcesoRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegistrarProceso, err)
	}

	resp, err := h.procesamientoService.RegistrarProceso(c.Context(), folio, *req, actor(c))
	if err != nil {
		return failed(c, domain.MessageFailedRegistrarProceso, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessRegistrarProceso)
}
