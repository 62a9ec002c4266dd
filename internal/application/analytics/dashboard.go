// Package analytics agrega os números da visão geral e do painel de lojas a
// partir do snapshot do state store (tudo read-only, em memória).
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/atelie7divas/atelie-api/internal/application/dto"
	"github.com/atelie7divas/atelie-api/internal/application/state"
	"github.com/atelie7divas/atelie-api/internal/domain/entity"
)

// DashboardUseCase monta o resumo do dashboard.
type DashboardUseCase struct {
	store *state.Store
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(store *state.Store) *DashboardUseCase {
	return &DashboardUseCase{store: store}
}

// Summary percorre o snapshot e calcula: totais de acervo, valor de estoque a
// custo e a venda, peças abaixo do mínimo, vendas por loja e gasto com insumos.
func (uc *DashboardUseCase) Summary() dto.DashboardSummary {
	snap := uc.store.Snapshot()

	out := dto.DashboardSummary{
		TotalProducts:     len(snap.Products),
		StockCostValue:    decimal.Zero,
		StockSaleValue:    decimal.Zero,
		RawMaterialSpend:  decimal.Zero,
		LowStockProducts:  []entity.Product{},
		TransactionsTotal: len(snap.Transactions),
	}

	for _, p := range snap.Products {
		out.TotalStockUnits += p.CurrentStock
		qty := decimal.NewFromInt(int64(p.CurrentStock))
		out.StockCostValue = out.StockCostValue.Add(qty.Mul(p.CostPrice))
		out.StockSaleValue = out.StockSaleValue.Add(qty.Mul(p.SalePrice))
		if p.CurrentStock <= p.MinStock {
			out.LowStockProducts = append(out.LowStockProducts, p)
		}
	}

	for _, rm := range snap.RawMaterials {
		out.RawMaterialSpend = out.RawMaterialSpend.Add(rm.Value)
	}

	out.SalesByStore = salesByStore(snap.Stores, snap.Transactions)
	return out
}

// salesByStore soma lançamentos SALE por loja, na ordem da coleção de lojas.
// Vendas sem loja atribuída são ignoradas aqui (aparecem só no total geral).
func salesByStore(stores []entity.Store, txs []entity.Transaction) []dto.StoreSales {
	out := make([]dto.StoreSales, 0, len(stores))
	for _, st := range stores {
		sales := dto.StoreSales{StoreID: st.ID, StoreName: st.Name, TotalValue: decimal.Zero}
		for _, tx := range txs {
			if tx.Type == entity.TxTypeSale && tx.StoreID == st.ID {
				sales.SalesCount++
				sales.TotalValue = sales.TotalValue.Add(tx.TotalValue)
			}
		}
		out = append(out, sales)
	}
	return out
}
