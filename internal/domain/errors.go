package domain

import (
	"errors"
	"fmt"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrProductNotFound    = errors.New("produto não encontrado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists = errors.New("o email já está cadastrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidCredentials = errors.New("acesso negado, verifique suas credenciais")
	ErrInactiveUser       = errors.New("usuário inativo")
	ErrInsufficientStock  = errors.New("estoque insuficiente")
	ErrSyncUnconfigured   = errors.New("URL de sincronização não configurada")
)

// InsufficientStockError carrega a quantidade disponível para a mensagem
// exibida ao usuário ("Temos apenas N unidades").
type InsufficientStockError struct {
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("estoque insuficiente, temos apenas %d unidades", e.Available)
}

// Unwrap permite errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
