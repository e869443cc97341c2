package handlers

import (
	"galeana-pepper/domain"
	"galeana-pepper/internal/api/presenters"
	"galeana-pepper/pkg/producto"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ProductoHandler interface {
		RegistrarIngreso(c *fiber.Ctx) error
		GetProductos(c *fiber.Ctx) error
		ListaEspera(c *fiber.Ctx) error
		GetProducto(c *fiber.Ctx) error
		EnviarAPesaje(c *fiber.Ctx) error
		SubirFoto(c *fiber.Ctx) error
		GetEventos(c *fiber.Ctx) error
	}

	productoHandler struct {
		productoService producto.ProductoService
		validator       *validator.Validate
	}
)

func NewProductoHandler(productoService producto.ProductoService, validator *validator.Validate) ProductoHandler {
	return &productoHandler{
		productoService: productoService,
		validator:       validator,
	}
}

func (h *productoHandler) RegistrarIngreso(c *fiber.Ctx) error {
	req := new(domain.RegistrarIngresoRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegistrarIngreso, err)
	}

	resp, err := h.productoService.RegistrarIngreso(c.Context(), *req, actor(c))
	if err != nil {
		return failed(c, domain.MessageFailedRegistrarIngreso, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusCreated, domain.MessageSuccessRegistrarIngreso)
}

func (h *productoHandler) GetProductos(c *fiber.Ctx) error {
	estado := c.Query("estado")
	if estado == "" {
		return h.ListaEspera(c)
	}

	productos, err := h.productoService.ListByEstado(c.Context(), estado)
	if err != nil {
		return failed(c, domain.MessageFailedGetProductos, err)
	}

	return presenters.SuccessResponse(c, productos, fiber.StatusOK, domain.MessageSuccessGetProductos)
}

func (h *productoHandler) ListaEspera(c *fiber.Ctx) error {
	productos, err := h.productoService.ListaEspera(c.Context())
	if err != nil {
		return failed(c, domain.MessageFailedGetProductos, err)
	}

	return presenters.SuccessResponse(c, productos, fiber.StatusOK, domain.MessageSuccessGetProductos)
}

func (h *productoHandler) GetProducto(c *fiber.Ctx) error {
	folio, err := parseFolio(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidFolio, err)
	}

	resp, err := h.productoService.GetProducto(c.Context(), folio)
	if err != nil {
		return failed(c, domain.MessageFailedGetProducto, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGetProducto)
}

func (h *productoHandler) EnviarAPesaje(c *fiber.Ctx) error {
	folio, err := parseFolio(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidFolio, err)
	}

	resp, err := h.productoService.EnviarAPesaje(c.Context(), folio, actor(c))
	if err != nil {
		return failed(c, domain.MessageFailedEnviarAPesaje, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessEnviarAPesaje)
}

func (h *productoHandler) SubirFoto(c *fiber.Ctx) error {
	folio, err := parseFolio(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidFolio, err)
	}

	file, err := c.FormFile("foto")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadFoto, domain.ErrFotoRequerida)
	}

	resp, err := h.productoService.SubirFoto(c.Context(), folio, file)
	if err != nil {
		return failed(c, domain.MessageFailedUploadFoto, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessUploadFoto)
}

func (h *productoHandler) GetEventos(c *fiber.Ctx) error {
	folio, err := parseFolio(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidFolio, err)
	}

	eventos, err := h.productoService.GetEventos(c.Context(), folio)
	if err != nil {
		return failed(c, domain.MessageFailedGetEventos, err)
	}

	return presenters.SuccessResponse(c, eventos, fiber.StatusOK, domain.MessageSuccessGetEventos)
}
