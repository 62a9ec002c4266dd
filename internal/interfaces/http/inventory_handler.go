package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/atelie7divas/atelie-api/internal/application/dto"
	"github.com/atelie7divas/atelie-api/internal/application/inventory"
	"github.com/atelie7divas/atelie-api/internal/application/state"
	"github.com/atelie7divas/atelie-api/internal/domain"
)

// InventoryHandler movimentações de estoque e consulta do livro de movimentos.
type InventoryHandler struct {
	uc    *inventory.UseCase
	store *state.Store
}

// NewInventoryHandler constrói o handler.
func NewInventoryHandler(uc *inventory.UseCase, store *state.Store) *InventoryHandler {
	return &InventoryHandler{uc: uc, store: store}
}

// RegisterMovement aplica ENTRY/SALE/EXIT. Falha de validação não altera nada.
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}

	tx, err := h.uc.ProcessChange(inventory.ChangeInput{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Type:      in.Type,
		StoreID:   in.StoreID,
		UserID:    GetUserID(c),
	})
	if err != nil {
		var insufficient *domain.InsufficientStockError
		switch {
		case errors.As(err, &insufficient):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
				Code:    "INSUFFICIENT_STOCK",
				Message: insufficient.Error(),
			})
		case errors.Is(err, domain.ErrProductNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity positivo e type ENTRY|SALE|EXIT são obrigatórios"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovementResponse{Success: true, Transaction: tx})
}

// ListTransactions devolve o livro de movimentos completo.
func (h *InventoryHandler) ListTransactions(c *fiber.Ctx) error {
	return c.JSON(h.store.Transactions())
}
