package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/atelie7divas/atelie-api/internal/application/dto"
	"github.com/atelie7divas/atelie-api/internal/application/state"
	"github.com/atelie7divas/atelie-api/internal/infrastructure/report"
)

// ReportHandler exportação XLSX do inventário (mesmo formato de abas da
// planilha remota, para consulta offline e backup manual).
type ReportHandler struct {
	store *state.Store
}

// NewReportHandler constrói o handler.
func NewReportHandler(store *state.Store) *ReportHandler {
	return &ReportHandler{store: store}
}

// InventoryXLSX devolve o workbook com PRODUCTS e TRANSACTIONS.
func (h *ReportHandler) InventoryXLSX(c *fiber.Ctx) error {
	book, err := report.InventoryWorkbook(h.store.Products(), h.store.Transactions())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario-7divas.xlsx"`)
	return c.Send(book)
}
