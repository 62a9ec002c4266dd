// Package dto tipos de requisição/resposta da API consumida pelos painéis.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/atelie7divas/atelie-api/internal/domain/entity"
)

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ── Auth ──────────────────────────────────────────────────────────────────────

// LoginRequest credenciais de entrada.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse usuário sem a credencial.
type UserResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
	Status string `json:"status"`
}

// LoginResponse token de sessão + usuário.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ToUserResponse projeta o usuário sem expor a senha.
func ToUserResponse(u entity.User) UserResponse {
	return UserResponse{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
		Avatar: u.Avatar,
		Status: u.Status,
	}
}

// ── Inventário ────────────────────────────────────────────────────────────────

// MovementRequest movimentação de estoque (ENTRY | SALE | EXIT).
type MovementRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Type      string `json:"type"`
	StoreID   string `json:"storeId,omitempty"`
}

// MovementResponse resultado da movimentação.
type MovementResponse struct {
	Success     bool               `json:"success"`
	Transaction entity.Transaction `json:"transaction"`
}

// ── Dashboard ─────────────────────────────────────────────────────────────────

// StoreSales total de vendas de uma loja.
type StoreSales struct {
	StoreID    string          `json:"storeId"`
	StoreName  string          `json:"storeName"`
	SalesCount int             `json:"salesCount"`
	TotalValue decimal.Decimal `json:"totalValue"`
}

// DashboardSummary visão geral calculada sobre o snapshot corrente.
type DashboardSummary struct {
	TotalProducts     int               `json:"totalProducts"`
	TotalStockUnits   int               `json:"totalStockUnits"`
	StockCostValue    decimal.Decimal   `json:"stockCostValue"`
	StockSaleValue    decimal.Decimal   `json:"stockSaleValue"`
	LowStockProducts  []entity.Product  `json:"lowStockProducts"`
	SalesByStore      []StoreSales      `json:"salesByStore"`
	RawMaterialSpend  decimal.Decimal   `json:"rawMaterialSpend"`
	TransactionsTotal int               `json:"transactionsTotal"`
}
