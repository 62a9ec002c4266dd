package entity

// Perfis de acesso do sistema.
const (
	RoleAdmin          = "ADMIN"
	RoleEstoque        = "ESTOQUE_EXPEDICAO" // estoque e expedição
	RoleEntradaInsumos = "ENTRADA_INSUMOS"
	RoleFinanceiro     = "FINANCEIRO"
	RoleGerencia       = "GERENCIA"
	RoleTI             = "TI" // perfil de manutenção
)

// Status de usuário.
const (
	UserStatusAtivo   = "ATIVO"
	UserStatusInativo = "INATIVO"
)

// User usuário do sistema. Nunca é removido fisicamente: desativação via Status.
// Password fica em texto plano por contrato com a planilha remota (as linhas da
// aba USERS guardam a credencial literal); segurança de autenticação está fora
// do escopo do produto.
// As tags JSON espelham os cabeçalhos da aba USERS.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"` // chave de login, case-insensitive
	Password string `json:"password,omitempty"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar,omitempty"`
	Status   string `json:"status"` // ATIVO | INATIVO
}

// ValidRole informa se o perfil pertence à enumeração fixa.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleEstoque, RoleEntradaInsumos, RoleFinanceiro, RoleGerencia, RoleTI:
		return true
	}
	return false
}
