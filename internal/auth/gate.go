package auth

import (
	"context"
	"strings"

	domain "github.com/Max-Antonio/lu-estilo-API/internal/domain/usuario"
	"github.com/Max-Antonio/lu-estilo-API/internal/httperr"
	"github.com/Max-Antonio/lu-estilo-API/internal/models"
)

// Gate concentra as decisões de autenticação e autorização: login,
// resolução do usuário corrente a partir do bearer token e a regra
// única de autorização do sistema (admin para escrita).
type Gate struct {
	usuarios domain.Repository
	tokens   *TokenService
}

func NewGate(usuarios domain.Repository, tokens *TokenService) *Gate {
	return &Gate{usuarios: usuarios, tokens: tokens}
}

// Authenticate valida o par email/senha. Usuário inexistente e senha
// errada são erros distintos (404 e 401). Não emite token; isso é
// composição do handler.
func (g *Gate) Authenticate(ctx context.Context, email, senha string) (*models.Usuario, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	usuario, err := g.usuarios.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !VerifyPassword(senha, usuario.Senha) {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}
	return usuario, nil
}

// CurrentUser resolve o dono de um bearer token. Token inválido ou
// expirado, subject vazio, ou subject que não resolve mais (conta
// deletada com token ainda válido): tudo vira 401.
func (g *Gate) CurrentUser(ctx context.Context, tokenString string) (*models.Usuario, error) {
	claims, err := g.tokens.DecodeStrict(tokenString)
	if err != nil {
		return nil, err
	}

	usuario, err := g.usuarios.FindByEmail(ctx, claims.Subject)
	if err != nil {
		if httperr.IsBusiness(err, "usuario_not_found") {
			return nil, httperr.ErrBusiness("unauthenticated")
		}
		return nil, err
	}
	return usuario, nil
}

// RequireAdmin é a única regra de autorização: toda mutação de
// cliente/produto/pedido/usuario passa por aqui.
func (g *Gate) RequireAdmin(usuario *models.Usuario) error {
	if usuario == nil || usuario.Role != models.RoleAdmin {
		return httperr.ErrBusiness("forbidden")
	}
	return nil
}

// CreateUsuario hasheia a senha e persiste o usuário. O plaintext
// nunca chega ao repositório.
func (g *Gate) CreateUsuario(ctx context.Context, nome, email, senha string, role models.Role) (*models.Usuario, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if role == "" {
		role = models.RoleUser
	}
	if !role.IsValid() {
		return nil, httperr.ErrBusiness("invalid_role")
	}

	if _, err := g.usuarios.FindByEmail(ctx, email); err == nil {
		return nil, httperr.ErrBusiness("email_already_used")
	} else if !httperr.IsBusiness(err, "usuario_not_found") {
		return nil, err
	}

	hash, err := HashPassword(senha)
	if err != nil {
		return nil, err
	}

	usuario := &models.Usuario{
		Nome:  nome,
		Email: email,
		Senha: hash,
		Role:  role,
	}
	if err := g.usuarios.Create(ctx, usuario); err != nil {
		return nil, err
	}
	return usuario, nil
}
