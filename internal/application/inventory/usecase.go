// Package inventory contém a única peça de lógica de negócio de verdade do
// sistema: a movimentação de estoque com lançamento no livro de movimentos.
package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/atelie7divas/atelie-api/internal/application/state"
	"github.com/atelie7divas/atelie-api/internal/domain"
	"github.com/atelie7divas/atelie-api/internal/domain/entity"
)

// systemUserID ator usado quando não há usuário de sessão (rotinas internas).
const systemUserID = "sys"

// UseCase movimentação de estoque sobre o state store.
type UseCase struct {
	store *state.Store
}

// NewUseCase constrói o caso de uso.
func NewUseCase(store *state.Store) *UseCase {
	return &UseCase{store: store}
}

// ChangeInput entrada de uma movimentação.
type ChangeInput struct {
	ProductID string
	Quantity  int    // sempre positivo; o sinal vem do tipo
	Type      string // ENTRY soma; SALE/EXIT subtraem
	StoreID   string // opcional (expedição)
	UserID    string // usuário da sessão; vazio -> "sys"
}

// ProcessChange valida e aplica a movimentação: anexa um lançamento imutável e
// ajusta o estoque corrente do produto, ambos ou nenhum. Para SALE/EXIT a
// quantidade pedida não pode exceder o estoque (sem atendimento parcial);
// a violação devolve InsufficientStockError com a quantidade disponível.
//
// Preço unitário: SalePrice para SALE, CostPrice para os demais tipos.
func (uc *UseCase) ProcessChange(in ChangeInput) (entity.Transaction, error) {
	if in.Quantity <= 0 {
		return entity.Transaction{}, domain.ErrInvalidInput
	}
	switch in.Type {
	case entity.TxTypeEntry, entity.TxTypeSale, entity.TxTypeExit:
	default:
		return entity.Transaction{}, domain.ErrInvalidInput
	}

	prod, ok := uc.store.ProductByID(in.ProductID)
	if !ok {
		return entity.Transaction{}, domain.ErrProductNotFound
	}

	unitPrice := prod.CostPrice
	if in.Type == entity.TxTypeSale {
		unitPrice = prod.SalePrice
	}

	delta := in.Quantity
	if in.Type != entity.TxTypeEntry {
		delta = -in.Quantity
	}

	userID := in.UserID
	if userID == "" {
		userID = systemUserID
	}

	tx := entity.Transaction{
		ID:         "tx" + uuid.New().String(),
		ProductID:  in.ProductID,
		Type:       in.Type,
		Quantity:   in.Quantity,
		UnitPrice:  unitPrice,
		TotalValue: decimal.NewFromInt(int64(in.Quantity)).Mul(unitPrice),
		Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
		UserID:     userID,
		StoreID:    in.StoreID,
	}

	// A checagem de estoque vale sob o lock do store: existência e saldo são
	// reavaliados no momento da aplicação.
	if err := uc.store.ApplyInventoryChange(in.ProductID, delta, tx); err != nil {
		return entity.Transaction{}, err
	}
	return tx, nil
}
