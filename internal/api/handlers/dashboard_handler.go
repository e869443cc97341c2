package handlers

import (
	"galeana-pepper/domain"
	"galeana-pepper/internal/api/presenters"
	"galeana-pepper/pkg/dashboard"

	"github.com/gofiber/fiber/v2"
)

type (
	DashboardHandler interface {
		GetMetricas(c *fiber.Ctx) error
		GetAuditoria(c *fiber.Ctx) error
	}

	dashboardHandler struct {
		dashboardService dashboard.DashboardService
	}
)

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandler{
		dashboardService: dashboardService,
	}
}

func (h *dashboardHandler) GetMetricas(c *fiber.Ctx) error {
	metricas, err := h.dashboardService.GetMetricas(c.Context())
	if err != nil {
		return failed(c, domain.MessageFailedGetMetricas, err)
	}

	return presenters.SuccessResponse(c, metricas, fiber.StatusOK, domain.MessageSuccessGetMetricas)
}

func (h *dashboardHandler) GetAuditoria(c *fiber.Ctx) error {
	auditoria, err := h.dashboardService.GetAuditoria(c.Context(), parsePage(c), c.Query("search"))
	if err != nil {
		return failed(c, domain.MessageFailedGetAuditoria, err)
	}

	return presenters.SuccessResponse(c, auditoria, fiber.StatusOK, domain.MessageSuccessGetAuditoria)
}
