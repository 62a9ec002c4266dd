package entity

// Status de loja.
const (
	StoreStatusAtiva   = "ATIVA"
	StoreStatusInativa = "INATIVA"
)

// Store ponto de venda. Pertence à configuração e é referenciada por transações.
type Store struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"` // ATIVA | INATIVA
}
