package state_test

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelie7divas/atelie-api/internal/application/state"
	"github.com/atelie7divas/atelie-api/internal/domain/entity"
	"github.com/atelie7divas/atelie-api/internal/domain/seed"
	"github.com/atelie7divas/atelie-api/internal/infrastructure/localdb"
	"github.com/atelie7divas/atelie-api/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func openKV(t *testing.T) *localdb.KV {
	t.Helper()
	kv, err := localdb.Open(filepath.Join(t.TempDir(), "teste.db"))
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestNew_BancoVazioCaiNoSeed(t *testing.T) {
	store := state.New(openKV(t), testLogger())

	assert.Equal(t, seed.Users(), store.Users())
	assert.Equal(t, "Ateliê 7 Divas", store.Config().CompanyName)
	assert.Equal(t, seed.Stores(), store.Stores(), "lojas semeadas pela lista do config")
	assert.Empty(t, store.Transactions(), "o livro de movimentos nasce vazio")
}

func TestNew_ValorCorrompidoCaiNoSeed(t *testing.T) {
	kv := openKV(t)
	require.NoError(t, kv.Put(localdb.KeyProducts, []byte("{nao é json")))

	store := state.New(kv, testLogger())
	assert.Equal(t, seed.Products(), store.Products(), "JSON ilegível é tratado como ausente")
}

func TestRoundTrip_MutacoesSobrevivemAoReopen(t *testing.T) {
	kv := openKV(t)
	store := state.New(kv, testLogger())

	novo := entity.Product{
		ID: "px", SKU: "RND-001", Name: "Echarpe Seda", Category: "Acessórios", Unit: "un",
		CostPrice: decimal.NewFromInt(30), SalePrice: decimal.RequireFromString("89.9"),
		MinStock: 1, CurrentStock: 6,
	}
	store.CreateProduct(novo)
	store.CreateRawMaterial(entity.RawMaterialEntry{
		ID: "rmx", Item: "Botões Madrepérola", Quantity: 100, Unit: "un",
		Value: decimal.NewFromInt(55), Supplier: "Armarinho Central",
		Date: "2025-02-01T12:00:00.000Z", UserID: "u3",
	})

	cfg := store.Config()
	cfg.GasWebAppURL = "https://script.google.com/macros/s/abc/exec"
	store.SetConfig(cfg)

	// Reabre sobre o mesmo arquivo: tudo deve voltar idêntico.
	reloaded := state.New(kv, testLogger())
	assert.Equal(t, store.Products(), reloaded.Products())
	assert.Equal(t, store.RawMaterials(), reloaded.RawMaterials())
	assert.Equal(t, store.Users(), reloaded.Users())
	assert.Equal(t, store.Stores(), reloaded.Stores())
	assert.Equal(t, store.Transactions(), reloaded.Transactions())
	assert.Equal(t, "https://script.google.com/macros/s/abc/exec", reloaded.Config().GasWebAppURL)
}

func TestReplaceAll_SubstituiColecoesEPreservaURL(t *testing.T) {
	store := state.New(openKV(t), testLogger())

	cfg := store.Config()
	cfg.GasWebAppURL = "https://script.google.com/macros/s/local/exec"
	store.SetConfig(cfg)

	remoto := entity.Dataset{
		Users:    []entity.User{{ID: "r1", Name: "Remota", Email: "remota@7divas.com", Role: entity.RoleAdmin, Status: entity.UserStatusAtivo}},
		Products: []entity.Product{{ID: "rp1", SKU: "RMT-001", Name: "Peça Remota", CurrentStock: 2}},
		Stores:   []entity.Store{{ID: "rs1", Name: "Loja Remota", Status: entity.StoreStatusAtiva}},
		Config: entity.AppConfig{
			CompanyName:  "Ateliê 7 Divas",
			AccentColor:  "#C0A062",
			Stores:       []entity.Store{{ID: "rs1", Name: "Loja Remota", Status: entity.StoreStatusAtiva}},
			GasWebAppURL: "https://endpoint-malicioso.example/exec",
		},
	}
	store.ReplaceAll(remoto)

	assert.Len(t, store.Users(), 1, "coleção substituída por inteiro")
	assert.Equal(t, "Remota", store.Users()[0].Name)
	assert.Len(t, store.Products(), 1)
	assert.Equal(t, "#C0A062", store.Config().AccentColor, "config remota aplicada campo a campo")
	assert.Equal(t, "https://script.google.com/macros/s/local/exec", store.Config().GasWebAppURL,
		"o remoto não pode redirecionar o cliente para outro endpoint")
}

func TestReplaceAll_ConfigSemCompanyNameNaoEAplicada(t *testing.T) {
	store := state.New(openKV(t), testLogger())
	original := store.Config()

	store.ReplaceAll(entity.Dataset{
		Users:  []entity.User{{ID: "r1", Email: "r@7divas.com"}},
		Config: entity.AppConfig{AccentColor: "#FFFFFF"},
	})
	assert.Equal(t, original.CompanyName, store.Config().CompanyName, "config sem companyName é ignorada")
	assert.Equal(t, original.AccentColor, store.Config().AccentColor)
}

func TestChanges_MutacaoSinalizaOCanal(t *testing.T) {
	store := state.New(openKV(t), testLogger())

	store.CreateStore(entity.Store{ID: "s9", Name: "Quiosque", Status: entity.StoreStatusAtiva})
	select {
	case <-store.Changes():
	default:
		t.Fatal("mutação deveria sinalizar o canal de mudanças")
	}

	// ReplaceAll (pull) não agenda push de eco.
	store.ReplaceAll(entity.Dataset{Users: []entity.User{{ID: "r1"}}})
	select {
	case <-store.Changes():
		t.Fatal("pull aplicado não deve sinalizar o canal de mudanças")
	default:
	}
}

func TestStoreMutations_EspelhamConfigStores(t *testing.T) {
	store := state.New(openKV(t), testLogger())

	store.CreateStore(entity.Store{ID: "s3", Name: "Outlet", Status: entity.StoreStatusAtiva})
	assert.Equal(t, store.Stores(), store.Config().Stores, "config.stores espelha a coleção")

	require.NoError(t, store.UpdateStore(entity.Store{ID: "s3", Name: "Outlet", Status: entity.StoreStatusInativa}))
	assert.Equal(t, store.Stores(), store.Config().Stores)
	assert.NotEmpty(t, store.Config().Stores, "a lista de lojas do config nunca fica vazia")
}
