package handlers

import (
	"galeana-pepper/domain"
	"galeana-pepper/internal/api/presenters"
	"galeana-pepper/pkg/proveedor"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ProveedorHandler interface {
		CreateProveedor(c *fiber.Ctx) error
		GetProveedores(c *fiber.Ctx) error
		GetProveedor(c *fiber.Ctx) error
		UpdateProveedor(c *fiber.Ctx) error
		DeleteProveedor(c *fiber.Ctx) error
		GetCamiones(c *fiber.Ctx) error
	}

	proveedorHandler struct {
		proveedorService proveedor.ProveedorService
		validator        *validator.Validate
	}
)

func NewProveedorHandler(proveedorService proveedor.ProveedorService, validator *validator.Validate) ProveedorHandler {
	return &proveedorHandler{
		proveedorService: proveedorService,
		validator:        validator,
	}
}

func (h *proveedorHandler) CreateProveedor(c *fiber.Ctx) error {
	req := new(domain.CreateProveedorRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateProveedor, err)
	}

	resp, err := h.proveedorService.CreateProveedor(c.Context(), *req)
	if err != nil {
		return failed(c, domain.MessageFailedCreateProveedor, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusCreated, domain.MessageSuccessCreateProveedor)
}

func (h *proveedorHandler) GetProveedores(c *fiber.Ctx) error {
	proveedores, err := h.proveedorService.GetProveedores(c.Context())
	if err != nil {
		return failed(c, domain.MessageFailedGetProveedores, err)
	}

	return presenters.SuccessResponse(c, proveedores, fiber.StatusOK, domain.MessageSuccessGetProveedores)
}

func (h *proveedorHandler) GetProveedor(c *fiber.Ctx) error {
	resp, err := h.proveedorService.GetProveedor(c.Context(), c.Params("numero"))
	if err != nil {
		return failed(c, domain.MessageFailedGetProveedor, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGetProveedor)
}

func (h *proveedorHandler) UpdateProveedor(c *fiber.Ctx) error {
	req := new(domain.UpdateProveedorRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateProveedor, err)
	}

	resp, err := h.proveedorService.UpdateProveedor(c.Context(), c.Params("numero"), *req)
	if err != nil {
		return failed(c, domain.MessageFailedUpdateProveedor, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessUpdateProveedor)
}

func (h *proveedorHandler) DeleteProveedor(c *fiber.Ctx) error {
	if err := h.proveedorService.DeleteProveedor(c.Context(), c.Params("numero")); err != nil {
		return failed(c, domain.MessageFailedDeleteProveedor, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteProveedor)
}

func (h *proveedorHandler) GetCamiones(c *fiber.Ctx) error {
	camiones, err := h.proveedorService.GetCamiones(c.Context(), c.Params("numero"))
	if err != nil {
		return failed(c, domain.MessageFailedGetCamiones, err)
	}

	return presenters.SuccessResponse(c, camiones, fiber.StatusOK, domain.MessageSuccessGetCamiones)
}
