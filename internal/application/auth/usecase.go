// Package auth login por email + senha contra a coleção de usuários.
//
// A comparação de senha é texto plano por contrato com a planilha remota (as
// linhas de USERS carregam a credencial literal); segurança de autenticação
// está declaradamente fora do escopo do produto.
package auth

import (
	"strings"

	"github.com/atelie7divas/atelie-api/internal/application/dto"
	"github.com/atelie7divas/atelie-api/internal/application/state"
	"github.com/atelie7divas/atelie-api/internal/domain"
	"github.com/atelie7divas/atelie-api/internal/domain/entity"
	"github.com/atelie7divas/atelie-api/pkg/jwt"
)

// Conta fixa de manutenção: entra com perfil TI independentemente do conteúdo
// da coleção de usuários (recuperação quando a base local/remota quebra).
const (
	maintenanceEmail    = "ti@7divas.com"
	maintenancePassword = "mestre7"
)

// JWTConfig parâmetros de emissão de sessão.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase caso de uso de login.
type UseCase struct {
	store  *state.Store
	jwtCfg JWTConfig
}

// NewUseCase constrói o caso de uso.
func NewUseCase(store *state.Store, jwtCfg JWTConfig) *UseCase {
	return &UseCase{store: store, jwtCfg: jwtCfg}
}

// Login valida email (case-insensitive, espaços aparados) e senha (comparação
// exata) e emite o token de sessão. Usuário INATIVO não entra.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(in.Email)
	pass := strings.TrimSpace(in.Password)

	if email == "" || pass == "" {
		return nil, domain.ErrInvalidInput
	}

	// Bypass de manutenção antes de consultar a coleção.
	if strings.EqualFold(email, maintenanceEmail) && pass == maintenancePassword {
		return uc.session(entity.User{
			ID:     "ti",
			Name:   "Master TI Admin",
			Email:  maintenanceEmail,
			Role:   entity.RoleTI,
			Status: entity.UserStatusAtivo,
		})
	}

	user, found := uc.store.UserByEmail(email)
	if !found || user.Password != pass {
		return nil, domain.ErrInvalidCredentials
	}
	if user.Status != entity.UserStatusAtivo {
		return nil, domain.ErrInactiveUser
	}
	return uc.session(user)
}

func (uc *UseCase) session(user entity.User) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	}, nil
}
