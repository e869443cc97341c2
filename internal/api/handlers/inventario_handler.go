package handlers

import (
	"bytes"
	"fmt"

	"galeana-pepper/domain"
	"galeana-pepper/internal/api/presenters"
	"galeana-pepper/pkg/inventario"

	"github.com/gofiber/fiber/v2"
)

type (
	InventarioHandler interface {
		GetInventario(c *fiber.Ctx) error
		ExportXML(c *fiber.Ctx) error
		ExportCSV(c *fiber.Ctx) error
	}

	inventarioHandler struct {
		inventarioService inventario.InventarioService
	}
)

func NewInventarioHandler(inventarioService inventario.InventarioService) InventarioHandler {
	return &inventarioHandler{
		inventarioService: inventarioService,
	}
}

func (h *inventarioHandler) GetInventario(c *fiber.Ctx) error {
	items, err := h.inventarioService.GetProcesados(c.Context())
	if err != nil {
		return failed(c, domain.MessageFailedGetInventario, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetInventario)
}

func (h *inventarioHandler) ExportXML(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.inventarioService.ExportXML(c.Context(), &buf); err != nil {
		return failed(c, domain.MessageFailedExportar, err)
	}
	return sendAttachment(c, "application/xml; charset=utf-8", domain.InventarioXMLFilename, buf.Bytes())
}

func (h *inventarioHandler) ExportCSV(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.inventarioService.ExportCSV(c.Context(), &buf); err != nil {
		return failed(c, domain.MessageFailedExportar, err)
	}
	return sendAttachment(c, "text/csv; charset=utf-8", domain.InventarioCSVFilename, buf.Bytes())
}

func sendAttachment(c *fiber.Ctx, contentType string, filename string, body []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Status(fiber.StatusOK).Send(body)
}
