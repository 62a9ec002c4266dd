package entity

import "github.com/shopspring/decimal"

// RawMaterialEntry compra de insumo (append-mostly; editada/excluída pelo financeiro).
type RawMaterialEntry struct {
	ID       string          `json:"id"`
	Item     string          `json:"item"`
	Quantity float64         `json:"quantity"` // insumos podem ser fracionários (kg, m)
	Value    decimal.Decimal `json:"value,omitempty"`
	Supplier string          `json:"supplier"`
	Date     string          `json:"date"` // ISO-8601, como a planilha armazena
	UserID   string          `json:"userId"`
	Unit     string          `json:"unit,omitempty"`
}
