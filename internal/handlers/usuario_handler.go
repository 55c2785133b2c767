package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Max-Antonio/lu-estilo-API/internal/audit"
	"github.com/Max-Antonio/lu-estilo-API/internal/auth"
	domain "github.com/Max-Antonio/lu-estilo-API/internal/domain/usuario"
	"github.com/Max-Antonio/lu-estilo-API/internal/dto"
	"github.com/Max-Antonio/lu-estilo-API/internal/httperr"
	"github.com/Max-Antonio/lu-estilo-API/internal/httpresp"
	"github.com/Max-Antonio/lu-estilo-API/internal/middleware"
	"github.com/Max-Antonio/lu-estilo-API/internal/models"
)

type UsuarioHandler struct {
	db       *gorm.DB
	usuarios domain.Repository
	gate     *auth.Gate
	audit    *audit.Dispatcher
}

func NewUsuarioHandler(db *gorm.DB, usuarios domain.Repository, gate *auth.Gate, auditd *audit.Dispatcher) *UsuarioHandler {
	return &UsuarioHandler{db: db, usuarios: usuarios, gate: gate, audit: auditd}
}

// --------- Handlers ---------

func (h *UsuarioHandler) List(c *gin.Context) {
	usuarios, err := h.usuarios.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_usuarios", "Falha ao listar usuários.")
		return
	}
	httpresp.OK(c, dto.NewUsuarioPublicList(usuarios))
}

func (h *UsuarioHandler) Me(c *gin.Context) {
	usuario := middleware.CurrentUsuario(c)
	if usuario == nil {
		httperr.Unauthorized(c, "unauthenticated", "Usuário não está no contexto.")
		return
	}
	httpresp.OK(c, dto.NewUsuarioPublic(*usuario))
}

func (h *UsuarioHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "id inválido")
		return
	}

	usuario, err := h.usuarios.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		if httperr.IsBusiness(err, "usuario_not_found") {
			httperr.NotFound(c, "usuario_not_found", "usuario não encontrado")
			return
		}
		httperr.Internal(c, "failed_to_get_usuario", "Falha ao buscar usuário.")
		return
	}
	httpresp.OK(c, dto.NewUsuarioPublic(*usuario))
}

func (h *UsuarioHandler) Create(c *gin.Context) {
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
		httperr.Internal(c, "failed_to_create_usuario", "Falha ao criar usuário.")
		return
	}

	h.dispatch(c, "usuario_created", usuario.ID)
	httpresp.OK(c, dto.NewUsuarioPublic(*usuario))
}

// Delete remove um usuário. Enquanto houver um perfil Cliente
// apontando para ele a deleção é bloqueada com 409.
func (h *UsuarioHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "id inválido")
		return
	}

	if _, err := h.usuarios.FindByID(c.Request.Context(), uint(id)); err != nil {
		if httperr.IsBusiness(err, "usuario_not_found") {
			httperr.NotFound(c, "usuario_not_found", "usuario não encontrado")
			return
		}
		httperr.Internal(c, "failed_to_get_usuario", "Falha ao buscar usuário.")
		return
	}

	var count int64
	if err := h.db.Model(&models.Cliente{}).Where("usuario_id = ?", id).Count(&count).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_usuario", "Falha ao deletar usuário.")
		return
	}
	if count > 0 {
		httperr.Conflict(c, "usuario_has_cliente", "usuário possui perfil de cliente, delete o cliente antes")
		return
	}

	if err := h.usuarios.Delete(c.Request.Context(), uint(id)); err != nil {
		httperr.Internal(c, "failed_to_delete_usuario", "Falha ao deletar usuário.")
		return
	}

	h.dispatch(c, "usuario_deleted", uint(id))
	httpresp.Detail(c, "usuario deleted")
}

func (h *UsuarioHandler) dispatch(c *gin.Context, action string, entityID uint) {
	var actorID *uint
	if actor := middleware.CurrentUsuario(c); actor != nil {
		actorID = &actor.ID
	}
	h.audit.Dispatch(audit.Event{
		UsuarioID: actorID,
		Action:    action,
		Entity:    "usuario",
		EntityID:  &entityID,
	})
}
