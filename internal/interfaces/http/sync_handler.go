package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/atelie7divas/atelie-api/internal/application/dto"
	"github.com/atelie7divas/atelie-api/internal/application/state"
	appsync "github.com/atelie7divas/atelie-api/internal/application/sync"
	"github.com/atelie7divas/atelie-api/internal/domain"
)

// SyncHandler status da sincronização e disparo manual (painel de manutenção).
type SyncHandler struct {
	engine *appsync.Engine
	store  *state.Store
}

// NewSyncHandler constrói o handler.
func NewSyncHandler(engine *appsync.Engine, store *state.Store) *SyncHandler {
	return &SyncHandler{engine: engine, store: store}
}

// Status devolve o relatório corrente do motor.
func (h *SyncHandler) Status(c *fiber.Ctx) error {
	return c.JSON(h.engine.Status())
}

// Force pull + push imediatos. O push respeita o guarda de voo único: um
// pedido concorrente é descartado, não enfileirado.
func (h *SyncHandler) Force(c *fiber.Ctx) error {
	if h.store.GasWebAppURL() == "" {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "SYNC_UNCONFIGURED", Message: domain.ErrSyncUnconfigured.Error(),
		})
	}
	h.engine.ForceSync(c.Context())
	return c.JSON(h.engine.Status())
}
