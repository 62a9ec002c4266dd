package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/atelie7divas/atelie-api/internal/application/dto"
	"github.com/atelie7divas/atelie-api/internal/application/state"
	"github.com/atelie7divas/atelie-api/internal/domain"
	"github.com/atelie7divas/atelie-api/internal/domain/entity"
)

// StoreHandler lojas (painel admin). Lojas não são excluídas: desativação via
// Status, preservando as transações que as referenciam.
type StoreHandler struct {
	store *state.Store
}

// NewStoreHandler constrói o handler.
func NewStoreHandler(store *state.Store) *StoreHandler {
	return &StoreHandler{store: store}
}

// List devolve as lojas.
func (h *StoreHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.store.Stores())
}

// Create cadastra uma loja (espelhada em config.stores).
func (h *StoreHandler) Create(c *fiber.Ctx) error {
	var in entity.Store
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name é obrigatório"})
	}
	if in.ID == "" {
		in.ID = "s" + uuid.New().String()
	}
	if in.Status == "" {
		in.Status = entity.StoreStatusAtiva
	}
	h.store.CreateStore(in)
	return c.Status(fiber.StatusCreated).JSON(in)
}

// Update edita uma loja (inclui ativar/desativar).
func (h *StoreHandler) Update(c *fiber.Ctx) error {
	var in entity.Store
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	in.ID = c.Params("id")
	if err := h.store.UpdateStore(in); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "loja não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(in)
}
