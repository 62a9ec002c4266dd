package analytics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelie7divas/atelie-api/internal/application/analytics"
	"github.com/atelie7divas/atelie-api/internal/application/state"
	"github.com/atelie7divas/atelie-api/internal/domain/entity"
	"github.com/atelie7divas/atelie-api/pkg/logger"
)

type memKV struct {
	m map[string][]byte
}

func (k *memKV) Get(key string) ([]byte, bool, error) { v, ok := k.m[key]; return v, ok, nil }
func (k *memKV) Put(key string, value []byte) error   { k.m[key] = value; return nil }

func TestSummary_AgregadosDoAcervo(t *testing.T) {
	store := state.New(&memKV{m: map[string][]byte{}}, logger.New(logger.Config{Env: "production", Level: "error"}))

	// Substitui o acervo semeado por um cenário controlado.
	store.ReplaceAll(entity.Dataset{
		Users: []entity.User{{ID: "u1", Email: "carla@7divas.com", Role: entity.RoleAdmin, Status: entity.UserStatusAtivo}},
		Products: []entity.Product{
			// 4 un × custo 20 / venda 50; acima do mínimo.
			{ID: "p1", Name: "Vestido", CostPrice: decimal.NewFromInt(20), SalePrice: decimal.NewFromInt(50), MinStock: 2, CurrentStock: 4},
			// 1 un × custo 10 / venda 30; no mínimo (conta como baixo).
			{ID: "p2", Name: "Bolsa", CostPrice: decimal.NewFromInt(10), SalePrice: decimal.NewFromInt(30), MinStock: 1, CurrentStock: 1},
		},
		Stores: []entity.Store{
			{ID: "s1", Name: "Loja Matriz", Status: entity.StoreStatusAtiva},
			{ID: "s2", Name: "Loja Shopping", Status: entity.StoreStatusAtiva},
		},
		Transactions: []entity.Transaction{
			{ID: "tx1", ProductID: "p1", Type: entity.TxTypeSale, Quantity: 2, TotalValue: decimal.NewFromInt(100), StoreID: "s1"},
			{ID: "tx2", ProductID: "p1", Type: entity.TxTypeSale, Quantity: 1, TotalValue: decimal.NewFromInt(50), StoreID: "s1"},
			{ID: "tx3", ProductID: "p2", Type: entity.TxTypeSale, Quantity: 1, TotalValue: decimal.NewFromInt(30)}, // sem loja
			{ID: "tx4", ProductID: "p1", Type: entity.TxTypeEntry, Quantity: 5, TotalValue: decimal.NewFromInt(100), StoreID: "s1"},
		},
		RawMaterials: []entity.RawMaterialEntry{
			{ID: "rm1", Item: "Tecido", Value: decimal.NewFromInt(200)},
			{ID: "rm2", Item: "Linha", Value: decimal.RequireFromString("35.5")},
		},
		Config: entity.AppConfig{CompanyName: "Ateliê 7 Divas"},
	})

	sum := analytics.NewDashboardUseCase(store).Summary()

	assert.Equal(t, 2, sum.TotalProducts)
	assert.Equal(t, 5, sum.TotalStockUnits)
	assert.True(t, sum.StockCostValue.Equal(decimal.NewFromInt(90)), "4×20 + 1×10")
	assert.True(t, sum.StockSaleValue.Equal(decimal.NewFromInt(230)), "4×50 + 1×30")
	assert.True(t, sum.RawMaterialSpend.Equal(decimal.RequireFromString("235.5")))
	assert.Equal(t, 4, sum.TransactionsTotal)

	require.Len(t, sum.LowStockProducts, 1, "estoque igual ao mínimo já conta como baixo")
	assert.Equal(t, "p2", sum.LowStockProducts[0].ID)

	require.Len(t, sum.SalesByStore, 2)
	matriz := sum.SalesByStore[0]
	assert.Equal(t, "s1", matriz.StoreID)
	assert.Equal(t, 2, matriz.SalesCount, "ENTRY não conta como venda")
	assert.True(t, matriz.TotalValue.Equal(decimal.NewFromInt(150)))

	shopping := sum.SalesByStore[1]
	assert.Zero(t, shopping.SalesCount, "venda sem loja não é atribuída a ninguém")
	assert.True(t, shopping.TotalValue.Equal(decimal.Zero))
}

func TestSummary_AcervoVazio(t *testing.T) {
	store := state.New(&memKV{m: map[string][]byte{}}, logger.New(logger.Config{Env: "production", Level: "error"}))
	store.ReplaceAll(entity.Dataset{
		Users:  []entity.User{{ID: "u1", Email: "carla@7divas.com"}},
		Config: entity.AppConfig{CompanyName: "Ateliê 7 Divas"},
	})

	sum := analytics.NewDashboardUseCase(store).Summary()
	assert.Zero(t, sum.TotalProducts)
	assert.NotNil(t, sum.LowStockProducts, "lista vazia serializa como [], não null")
	assert.True(t, sum.StockCostValue.Equal(decimal.Zero))
	assert.Empty(t, sum.SalesByStore)
}
