package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/atelie7divas/atelie-api/internal/application/dto"
	"github.com/atelie7divas/atelie-api/internal/application/state"
	"github.com/atelie7divas/atelie-api/internal/domain"
	"github.com/atelie7divas/atelie-api/internal/domain/entity"
)

// RawMaterialHandler painel financeiro de insumos (append-mostly; edição e
// exclusão restritas ao perfil financeiro pelo router).
type RawMaterialHandler struct {
	store *state.Store
}

// NewRawMaterialHandler constrói o handler.
func NewRawMaterialHandler(store *state.Store) *RawMaterialHandler {
	return &RawMaterialHandler{store: store}
}

// List devolve as compras de insumo.
func (h *RawMaterialHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.store.RawMaterials())
}

// Create registra uma compra de insumo.
func (h *RawMaterialHandler) Create(c *fiber.Ctx) error {
	var in entity.RawMaterialEntry
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Item == "" || in.Quantity <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "item e quantity positiva são obrigatórios"})
	}
	if in.ID == "" {
		in.ID = "rm" + uuid.New().String()
	}
	if in.Date == "" {
		in.Date = time.Now().UTC().Format(time.RFC3339Nano)
	}
	if in.UserID == "" {
		in.UserID = GetUserID(c)
	}
	h.store.CreateRawMaterial(in)
	return c.Status(fiber.StatusCreated).JSON(in)
}

// Update edita um lançamento de insumo.
func (h *RawMaterialHandler) Update(c *fiber.Ctx) error {
	var in entity.RawMaterialEntry
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	in.ID = c.Params("id")
	if err := h.store.UpdateRawMaterial(in); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "insumo não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(in)
}

// Delete exclui um lançamento de insumo.
func (h *RawMaterialHandler) Delete(c *fiber.Ctx) error {
	if err := h.store.DeleteRawMaterial(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "insumo não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
