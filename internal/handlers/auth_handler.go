package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Max-Antonio/lu-estilo-API/internal/auth"
	"github.com/Max-Antonio/lu-estilo-API/internal/config"
	"github.com/Max-Antonio/lu-estilo-API/internal/dto"
	"github.com/Max-Antonio/lu-estilo-API/internal/httperr"
	"github.com/Max-Antonio/lu-estilo-API/internal/httpresp"
	"github.com/Max-Antonio/lu-estilo-API/internal/models"
)

type AuthHandler struct {
	gate   *auth.Gate
	tokens *auth.TokenService
	config *config.Config
}

func NewAuthHandler(gate *auth.Gate, tokens *auth.TokenService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{gate: gate, tokens: tokens, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	Nome  string      `json:"nome" binding:"required"`
	Email string      `json:"email" binding:"required,email"`
	Senha string      `json:"senha" binding:"required,min=6"`
	Role  models.Role `json:"role"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// --------- Responses ---------

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	RefreshToken string `json:"refresh_token"`
}

// --------- Handlers ---------

// Login recebe credenciais como form (username = email) e emite um
// access token de 24h.
func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("username")
	senha := c.PostForm("password")
	if email == "" || senha == "" {
		httperr.BadRequest(c, "invalid_request", "username e password são obrigatórios.")
		return
	}

	usuario, err := h.gate.Authenticate(c.Request.Context(), email, senha)
	if err != nil {
		if httperr.IsBusiness(err, "usuario_not_found") {
			httperr.NotFound(c, "usuario_not_found", "usuario não encontrado")
			return
		}
		if httperr.IsBusiness(err, "invalid_credentials") {
			httperr.Unauthorized(c, "invalid_credentials", "Email ou senha incorretos")
			return
		}
		httperr.Internal(c, "internal_error", "Falha ao autenticar.")
		return
	}

	token, err := h.tokens.CreateAccessToken(usuario.Email, h.config.LoginTokenTTL)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Falha ao emitir token.")
		return
	}

	httpresp.OK(c, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	usuario, err := h.gate.CreateUsuario(c.Request.Context(), req.Nome, req.Email, req.Senha, req.Role)
	if err != nil {
		if httperr.IsBusiness(err, "email_already_used") {
			httperr.BadRequest(c, "email_already_used", "email já utilizado")
			return
		}
		if httperr.IsBusiness(err, "invalid_role") {
			httperr.BadRequest(c, "invalid_role", "role inválida")
			return
		}
		httperr.Internal(c, "failed_to_create_usuario", "Falha ao registrar usuário.")
		return
	}

	httpresp.OK(c, dto.NewUsuarioPublic(*usuario))
}

// RefreshToken usa a verificação leniente: refresh inválido vira um
// 401 limpo, nunca um erro de parse.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	claims := h.tokens.Verify(req.RefreshToken)
	if claims == nil {
		httperr.Unauthorized(c, "invalid_refresh_token", "Invalid refresh token")
		return
	}
	if claims.Subject == "" {
		httperr.Unauthorized(c, "invalid_token_payload", "Invalid token payload")
		return
	}

	accessToken, err := h.tokens.CreateAccessToken(claims.Subject, 0)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Falha ao emitir token.")
		return
	}
	refreshToken, err := h.tokens.CreateRefreshToken(claims.Subject)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Falha ao emitir token.")
		return
	}

	httpresp.OK(c, RefreshTokenResponse{
		AccessToken:  accessToken,
		TokenType:    "bearer",
		RefreshToken: refreshToken,
	})
}
