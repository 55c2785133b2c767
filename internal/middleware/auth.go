package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Max-Antonio/lu-estilo-API/internal/auth"
	"github.com/Max-Antonio/lu-estilo-API/internal/httperr"
	"github.com/Max-Antonio/lu-estilo-API/internal/models"
)

const (
	ContextUsuario = "currentUsuario"
)

// AuthMiddleware extrai o bearer token, resolve o usuário via Gate e
// o anexa ao contexto. Qualquer falha curto-circuita com 401.
func AuthMiddleware(gate *auth.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Header Authorization ausente.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Header Authorization malformado.")
			c.Abort()
			return
		}

		usuario, err := gate.CurrentUser(c.Request.Context(), parts[1])
		if err != nil {
			httperr.Unauthorized(c, "unauthenticated", "Não foi possível validar as credenciais, faça o login novamente.")
			c.Abort()
			return
		}

		c.Set(ContextUsuario, usuario)
		c.Next()
	}
}

// CurrentUsuario recupera o usuário anexado pelo AuthMiddleware.
func CurrentUsuario(c *gin.Context) *models.Usuario {
	v, ok := c.Get(ContextUsuario)
	if !ok {
		return nil
	}
	usuario, _ := v.(*models.Usuario)
	return usuario
}

// AdminMiddleware aplica a regra admin-only nas rotas de escrita.
func AdminMiddleware(gate *auth.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		usuario := CurrentUsuario(c)
		if err := gate.RequireAdmin(usuario); err != nil {
			httperr.Forbidden(c, "forbidden", "Usuário não autorizado a usar esta rota.")
			c.Abort()
			return
		}
		c.Next()
	}
}
