// Package seed contém o conjunto de dados inicial usado quando o armazenamento
// local está vazio ou corrompido (primeira execução, reset de manutenção).
package seed

import (
	"github.com/shopspring/decimal"

	"github.com/atelie7divas/atelie-api/internal/domain/entity"
)

// Config configuração padrão da empresa, incluindo a lista de lojas que também
// semeia a coleção Stores quando não há override local.
func Config() entity.AppConfig {
	return entity.AppConfig{
		CompanyName:  "Ateliê 7 Divas",
		LogoText:     "7D",
		PrimaryColor: "#0F172A",
		AccentColor:  "#D4AF37",
		Stores:       Stores(),
	}
}

// Stores lojas padrão.
func Stores() []entity.Store {
	return []entity.Store{
		{ID: "s1", Name: "Loja Matriz", Status: entity.StoreStatusAtiva},
		{ID: "s2", Name: "Loja Shopping Norte", Status: entity.StoreStatusAtiva},
	}
}

// Users usuários padrão, um por perfil principal.
func Users() []entity.User {
	return []entity.User{
		{ID: "u1", Name: "Carla Mendes", Email: "carla@7divas.com", Password: "admin123", Role: entity.RoleAdmin, Status: entity.UserStatusAtivo},
		{ID: "u2", Name: "Rosana Lima", Email: "rosana@7divas.com", Password: "estoque7", Role: entity.RoleEstoque, Status: entity.UserStatusAtivo},
		{ID: "u3", Name: "Patrícia Souza", Email: "patricia@7divas.com", Password: "insumos7", Role: entity.RoleEntradaInsumos, Status: entity.UserStatusAtivo},
		{ID: "u4", Name: "Denise Carvalho", Email: "denise@7divas.com", Password: "financeiro7", Role: entity.RoleFinanceiro, Status: entity.UserStatusAtivo},
		{ID: "u5", Name: "Marcia Oliveira", Email: "marcia@7divas.com", Password: "gerencia7", Role: entity.RoleGerencia, Status: entity.UserStatusAtivo},
	}
}

// Products acervo inicial.
func Products() []entity.Product {
	return []entity.Product{
		{
			ID: "p1", SKU: "VST-001", Name: "Vestido Longo Festa", Category: "Vestidos", Unit: "un",
			CostPrice: decimal.NewFromInt(180), SalePrice: decimal.NewFromInt(450),
			MinStock: 3, CurrentStock: 8,
		},
		{
			ID: "p2", SKU: "SAI-002", Name: "Saia Midi Plissada", Category: "Saias", Unit: "un",
			CostPrice: decimal.NewFromInt(60), SalePrice: decimal.NewFromInt(150),
			MinStock: 5, CurrentStock: 12,
		},
		{
			ID: "p3", SKU: "BLU-003", Name: "Blusa Seda Off-White", Category: "Blusas", Unit: "un",
			CostPrice: decimal.NewFromInt(45), SalePrice: decimal.NewFromInt(120),
			MinStock: 5, CurrentStock: 20,
		},
		{
			ID: "p4", SKU: "CNJ-004", Name: "Conjunto Alfaiataria", Category: "Conjuntos", Unit: "un",
			CostPrice: decimal.NewFromInt(220), SalePrice: decimal.NewFromInt(520),
			MinStock: 2, CurrentStock: 4,
		},
	}
}

// RawMaterials compras de insumo iniciais.
func RawMaterials() []entity.RawMaterialEntry {
	return []entity.RawMaterialEntry{
		{
			ID: "rm1", Item: "Tecido Crepe Premium", Quantity: 35, Unit: "m",
			Value: decimal.NewFromInt(1050), Supplier: "Tecelagem Aurora",
			Date: "2025-01-10T12:00:00.000Z", UserID: "u3",
		},
		{
			ID: "rm2", Item: "Linha Poliéster Dourada", Quantity: 24, Unit: "un",
			Value: decimal.NewFromInt(96), Supplier: "Armarinho Central",
			Date: "2025-01-15T12:00:00.000Z", UserID: "u3",
		},
	}
}

// Transactions o livro começa vazio; todo lançamento nasce de uma movimentação real.
func Transactions() []entity.Transaction {
	return []entity.Transaction{}
}

// Dataset conjunto completo para o primeiro boot.
func Dataset() entity.Dataset {
	return entity.Dataset{
		Users:        Users(),
		Products:     Products(),
		Transactions: Transactions(),
		Stores:       Stores(),
		RawMaterials: RawMaterials(),
		Config:       Config(),
	}
}
