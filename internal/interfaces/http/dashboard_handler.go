package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/atelie7divas/atelie-api/internal/application/analytics"
)

// DashboardHandler visão geral calculada sobre o snapshot corrente.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary devolve os números da visão geral e do painel de lojas.
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.uc.Summary())
}
