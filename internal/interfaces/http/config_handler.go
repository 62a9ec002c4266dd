package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/atelie7divas/atelie-api/internal/application/dto"
	"github.com/atelie7divas/atelie-api/internal/application/state"
	"github.com/atelie7divas/atelie-api/internal/domain/entity"
)

// ConfigHandler singleton de configuração (identidade visual, lojas, endpoint
// de sync). Definir GasWebAppURL por aqui arma o laço de pull.
type ConfigHandler struct {
	store *state.Store
}

// NewConfigHandler constrói o handler.
func NewConfigHandler(store *state.Store) *ConfigHandler {
	return &ConfigHandler{store: store}
}

// Get devolve a configuração corrente.
func (h *ConfigHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.store.Config())
}

// Update substitui a configuração. A lista de lojas deve permanecer não vazia
// (invariante do singleton).
func (h *ConfigHandler) Update(c *fiber.Ctx) error {
	var in entity.AppConfig
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.CompanyName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "companyName é obrigatório"})
	}
	if len(in.Stores) == 0 {
		in.Stores = h.store.Stores()
	}
	h.store.SetConfig(in)
	return c.JSON(h.store.Config())
}
