package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelie7divas/atelie-api/internal/application/inventory"
	"github.com/atelie7divas/atelie-api/internal/application/state"
	"github.com/atelie7divas/atelie-api/internal/domain"
	"github.com/atelie7divas/atelie-api/internal/domain/entity"
	"github.com/atelie7divas/atelie-api/pkg/logger"
)

// memKV armazenamento em memória para os testes (implementa state.Persister).
type memKV struct {
	m map[string][]byte
}

func newMemKV() *memKV { return &memKV{m: map[string][]byte{}} }

func (k *memKV) Get(key string) ([]byte, bool, error) {
	v, ok := k.m[key]
	return v, ok, nil
}

func (k *memKV) Put(key string, value []byte) error {
	k.m[key] = value
	return nil
}

func newTestStore(t *testing.T) *state.Store {
	t.Helper()
	return state.New(newMemKV(), logger.New(logger.Config{Env: "production", Level: "error"}))
}

// produto do cenário de referência: estoque 10, preço de venda 50, custo 20.
func seedScenarioProduct(store *state.Store) {
	store.CreateProduct(entity.Product{
		ID: "p1", SKU: "TST-001", Name: "Vestido Teste", Category: "Vestidos", Unit: "un",
		CostPrice: decimal.NewFromInt(20), SalePrice: decimal.NewFromInt(50),
		MinStock: 2, CurrentStock: 10,
	})
}

func TestProcessChange_EntrySomaEstoque(t *testing.T) {
	store := newTestStore(t)
	seedScenarioProduct(store)
	uc := inventory.NewUseCase(store)

	before := len(store.Transactions())

	tx, err := uc.ProcessChange(inventory.ChangeInput{ProductID: "p1", Quantity: 5, Type: entity.TxTypeEntry, UserID: "u1"})
	require.NoError(t, err)

	p, ok := store.ProductByID("p1")
	require.True(t, ok)
	assert.Equal(t, 15, p.CurrentStock, "ENTRY de 5 deve somar ao estoque")
	assert.Len(t, store.Transactions(), before+1, "exatamente um lançamento novo")
	assert.Equal(t, entity.TxTypeEntry, tx.Type)
	assert.Equal(t, 5, tx.Quantity)
	assert.True(t, tx.UnitPrice.Equal(decimal.NewFromInt(20)), "ENTRY lança ao preço de custo")
}

func TestProcessChange_SaleCenarioReferencia(t *testing.T) {
	store := newTestStore(t)
	seedScenarioProduct(store)
	uc := inventory.NewUseCase(store)

	// Venda de 3: sucesso, estoque 7, total 150.
	tx, err := uc.ProcessChange(inventory.ChangeInput{ProductID: "p1", Quantity: 3, Type: entity.TxTypeSale, StoreID: "s1", UserID: "u2"})
	require.NoError(t, err)

	p, _ := store.ProductByID("p1")
	assert.Equal(t, 7, p.CurrentStock)
	assert.True(t, tx.UnitPrice.Equal(decimal.NewFromInt(50)), "SALE lança ao preço de venda")
	assert.True(t, tx.TotalValue.Equal(decimal.NewFromInt(150)), "total = 3 × 50")
	assert.Equal(t, "s1", tx.StoreID)

	txCount := len(store.Transactions())

	// Venda de 20: falha total, nada muda.
	_, err = uc.ProcessChange(inventory.ChangeInput{ProductID: "p1", Quantity: 20, Type: entity.TxTypeSale})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 7, insufficient.Available, "a mensagem informa a quantidade disponível")

	p, _ = store.ProductByID("p1")
	assert.Equal(t, 7, p.CurrentStock, "estoque intocado após falha")
	assert.Len(t, store.Transactions(), txCount, "nenhum lançamento após falha")
}

func TestProcessChange_ExitUsaPrecoDeCusto(t *testing.T) {
	store := newTestStore(t)
	seedScenarioProduct(store)
	uc := inventory.NewUseCase(store)

	tx, err := uc.ProcessChange(inventory.ChangeInput{ProductID: "p1", Quantity: 4, Type: entity.TxTypeExit})
	require.NoError(t, err)

	p, _ := store.ProductByID("p1")
	assert.Equal(t, 6, p.CurrentStock)
	assert.True(t, tx.UnitPrice.Equal(decimal.NewFromInt(20)), "EXIT lança ao preço de custo")
	assert.Equal(t, "sys", tx.UserID, "sem usuário de sessão o ator é o placeholder do sistema")
}

func TestProcessChange_ExitAlemDoEstoqueNaoAtendeParcial(t *testing.T) {
	store := newTestStore(t)
	seedScenarioProduct(store)
	uc := inventory.NewUseCase(store)

	_, err := uc.ProcessChange(inventory.ChangeInput{ProductID: "p1", Quantity: 11, Type: entity.TxTypeExit})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	p, _ := store.ProductByID("p1")
	assert.Equal(t, 10, p.CurrentStock, "sem atendimento parcial")
}

func TestProcessChange_ProdutoInexistente(t *testing.T) {
	store := newTestStore(t)
	uc := inventory.NewUseCase(store)

	_, err := uc.ProcessChange(inventory.ChangeInput{ProductID: "nao-existe", Quantity: 1, Type: entity.TxTypeEntry})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProcessChange_EntradaInvalida(t *testing.T) {
	store := newTestStore(t)
	seedScenarioProduct(store)
	uc := inventory.NewUseCase(store)

	_, err := uc.ProcessChange(inventory.ChangeInput{ProductID: "p1", Quantity: 0, Type: entity.TxTypeEntry})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "quantidade deve ser positiva")

	_, err = uc.ProcessChange(inventory.ChangeInput{ProductID: "p1", Quantity: 1, Type: "PRODUCTION"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "movimentação aceita apenas ENTRY/SALE/EXIT")
}
