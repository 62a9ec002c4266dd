// Package report gera a exportação XLSX do inventário — o mesmo formato de
// abas que a planilha remota usa, para consulta offline e backup manual.
package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/atelie7divas/atelie-api/internal/domain/entity"
)

var productHeaders = []string{"id", "sku", "name", "category", "unit", "costPrice", "salePrice", "minStock", "currentStock"}

var transactionHeaders = []string{"id", "productId", "type", "quantity", "unitPrice", "totalValue", "timestamp", "userId", "storeId"}

// InventoryWorkbook monta um arquivo XLSX com as abas PRODUCTS e TRANSACTIONS.
func InventoryWorkbook(products []entity.Product, transactions []entity.Transaction) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const productsSheet = "PRODUCTS"
	// A primeira aba nasce como "Sheet1"; renomeia em vez de criar outra.
	if err := f.SetSheetName("Sheet1", productsSheet); err != nil {
		return nil, fmt.Errorf("renomear aba: %w", err)
	}
	if err := writeRow(f, productsSheet, 1, toAnySlice(productHeaders)); err != nil {
		return nil, err
	}
	for i, p := range products {
		row := []any{p.ID, p.SKU, p.Name, p.Category, p.Unit,
			p.CostPrice.InexactFloat64(), p.SalePrice.InexactFloat64(), p.MinStock, p.CurrentStock}
		if err := writeRow(f, productsSheet, i+2, row); err != nil {
			return nil, err
		}
	}

	const txSheet = "TRANSACTIONS"
	if _, err := f.NewSheet(txSheet); err != nil {
		return nil, fmt.Errorf("criar aba %s: %w", txSheet, err)
	}
	if err := writeRow(f, txSheet, 1, toAnySlice(transactionHeaders)); err != nil {
		return nil, err
	}
	for i, tx := range transactions {
		row := []any{tx.ID, tx.ProductID, tx.Type, tx.Quantity,
			tx.UnitPrice.InexactFloat64(), tx.TotalValue.InexactFloat64(), tx.Timestamp, tx.UserID, tx.StoreID}
		if err := writeRow(f, txSheet, i+2, row); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("gravar workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, rowNum int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("escrever linha %d em %s: %w", rowNum, sheet, err)
	}
	return nil
}

func toAnySlice(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
