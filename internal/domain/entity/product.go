package entity

import "github.com/shopspring/decimal"

// Product peça do acervo. CurrentStock é o total corrente autoritativo,
// mantido pela operação de movimentação de estoque; nunca fica negativo.
// As tags JSON espelham os cabeçalhos da aba PRODUCTS.
type Product struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Unit         string          `json:"unit"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	SalePrice    decimal.Decimal `json:"salePrice"`
	MinStock     int             `json:"minStock"`
	CurrentStock int             `json:"currentStock"`
	ImageURL     string          `json:"imageUrl,omitempty"`
}
