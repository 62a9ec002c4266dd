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

// ProductHandler CRUD do acervo. O contador de estoque não é editável por
// aqui fora do formulário direto; movimentações passam pelo InventoryHandler.
type ProductHandler struct {
	store *state.Store
}

// NewProductHandler constrói o handler.
func NewProductHandler(store *state.Store) *ProductHandler {
	return &ProductHandler{store: store}
}

// List devolve o acervo completo.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.store.Products())
}

// GetByID devolve um produto.
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	p, ok := h.store.ProductByID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
	}
	return c.JSON(p)
}

// Create cadastra uma peça nova.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in entity.Product
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.SKU == "" || in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sku e name são obrigatórios"})
	}
	if in.CurrentStock < 0 || in.MinStock < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estoque não pode ser negativo"})
	}
	if in.ID == "" {
		in.ID = "p" + uuid.New().String()
	}
	h.store.CreateProduct(in)
	return c.Status(fiber.StatusCreated).JSON(in)
}

// Update edição direta de formulário (preços, mínimo, categoria...).
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in entity.Product
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	in.ID = c.Params("id")
	if in.CurrentStock < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estoque não pode ser negativo"})
	}
	if err := h.store.UpdateProduct(in); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(in)
}

// Delete remove a peça do acervo.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.store.DeleteProduct(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
