// Package http expõe a API REST consumida pelos painéis do dashboard.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/atelie7divas/atelie-api/internal/application/analytics"
	"github.com/atelie7divas/atelie-api/internal/application/auth"
	"github.com/atelie7divas/atelie-api/internal/application/inventory"
	"github.com/atelie7divas/atelie-api/internal/application/state"
	appsync "github.com/atelie7divas/atelie-api/internal/application/sync"
	"github.com/atelie7divas/atelie-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	Store       *state.Store
	AuthUC      *auth.UseCase
	InventoryUC *inventory.UseCase
	DashboardUC *analytics.DashboardUseCase
	SyncEngine  *appsync.Engine
	JWTSecret   string
}

// Router registra as rotas da API. Grupos espelham os painéis da UI e seus
// perfis: admin (ADMIN/TI), financeiro (FINANCEIRO/ADMIN/TI), manutenção (TI).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	adminOnly := RequireRoles(entity.RoleAdmin, entity.RoleTI)
	financeOnly := RequireRoles(entity.RoleFinanceiro, entity.RoleAdmin, entity.RoleTI)
	maintenanceOnly := RequireRoles(entity.RoleTI)

	// Acervo
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.Store)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Movimentações de estoque + livro de movimentos
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.Store)
	protected.Post("/inventory/movements", inventoryHandler.RegisterMovement)
	protected.Get("/transactions", inventoryHandler.ListTransactions)

	// Insumos (painel financeiro)
	raw := protected.Group("/raw-materials")
	rawHandler := NewRawMaterialHandler(deps.Store)
	raw.Get("/", rawHandler.List)
	raw.Post("/", rawHandler.Create)
	raw.Put("/:id", financeOnly, rawHandler.Update)
	raw.Delete("/:id", financeOnly, rawHandler.Delete)

	// Usuários (painel admin)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.Store)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)

	// Lojas (painel admin)
	stores := protected.Group("/stores")
	storeHandler := NewStoreHandler(deps.Store)
	stores.Get("/", storeHandler.List)
	stores.Post("/", adminOnly, storeHandler.Create)
	stores.Put("/:id", adminOnly, storeHandler.Update)

	// Configuração
	configHandler := NewConfigHandler(deps.Store)
	protected.Get("/config", configHandler.Get)
	protected.Put("/config", adminOnly, configHandler.Update)

	// Sincronização (painel de manutenção)
	syncHandler := NewSyncHandler(deps.SyncEngine, deps.Store)
	protected.Get("/sync/status", syncHandler.Status)
	protected.Post("/sync/force", maintenanceOnly, syncHandler.Force)

	// Visão geral + exportação
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)
	reportHandler := NewReportHandler(deps.Store)
	protected.Get("/reports/inventory.xlsx", reportHandler.InventoryXLSX)
}
