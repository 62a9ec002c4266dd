package entity

import "github.com/shopspring/decimal"

// Tipos de movimento de estoque.
const (
	TxTypeEntry        = "ENTRY"
	TxTypeExit         = "EXIT"
	TxTypeProduction   = "PRODUCTION"
	TxTypeSale         = "SALE"
	TxTypeMateriaPrima = "MATERIA_PRIMA"
)

// Transaction lançamento imutável do livro de movimentos: uma vez criado,
// nunca é alterado. Referencia um Product existente na criação, exceto
// lançamentos MATERIA_PRIMA, que apontam para um insumo.
type Transaction struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"productId,omitempty"`
	Type          string          `json:"type"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	TotalValue    decimal.Decimal `json:"totalValue"`
	Timestamp     string          `json:"timestamp"` // ISO-8601 UTC
	UserID        string          `json:"userId"`
	StoreID       string          `json:"storeId,omitempty"`
	RawMaterialID string          `json:"rawMaterialId,omitempty"`
}
