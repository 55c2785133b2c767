package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Max-Antonio/lu-estilo-API/internal/audit"
	"github.com/Max-Antonio/lu-estilo-API/internal/auth"
	"github.com/Max-Antonio/lu-estilo-API/internal/dto"
	"github.com/Max-Antonio/lu-estilo-API/internal/httperr"
	"github.com/Max-Antonio/lu-estilo-API/internal/httpresp"
	"github.com/Max-Antonio/lu-estilo-API/internal/middleware"
	"github.com/Max-Antonio/lu-estilo-API/internal/models"
	"github.com/Max-Antonio/lu-estilo-API/internal/validators"
)

type ClienteHandler struct {
	db    *gorm.DB
	gate  *auth.Gate
	audit *audit.Dispatcher
}

func NewClienteHandler(db *gorm.DB, gate *auth.Gate, auditd *audit.Dispatcher) *ClienteHandler {
	return &ClienteHandler{db: db, gate: gate, audit: auditd}
}

// --------- Requests ---------

// CreateClienteRequest cria a conta Usuario e o perfil Cliente juntos,
// como no fluxo de cadastro do back office.
type CreateClienteRequest struct {
	Nome  string      `json:"nome" binding:"required"`
	Email string      `json:"email" binding:"required,email"`
	Senha string      `json:"senha" binding:"required,min=6"`
	Role  models.Role `json:"role"`

	CPF            string     `json:"cpf" binding:"required"`
	Telefone       string     `json:"telefone"`
	Endereco       string     `json:"endereco"`
	DataNascimento *time.Time `json:"data_nascimento"`
}

type UpdateClienteRequest struct {
	Telefone *string `json:"telefone,omitempty"`
	Endereco *string `json:"endereco,omitempty"`
}

// --------- Handlers ---------

func (h *ClienteHandler) List(c *gin.Context) {
	skip, limit := pagination(c)
	nome := c.Query("nome")
	email := c.Query("email")

	q := h.db.Model(&models.Cliente{}).Preload("Usuario")

	if nome != "" || email != "" {
		q = q.Joins("JOIN usuarios ON usuarios.id = clientes.usuario_id")
		if nome != "" {
			q = q.Where("usuarios.nome = ?", nome)
		}
		if email != "" {
			q = q.Where("usuarios.email = ?", email)
		}
	}

	var clientes []models.Cliente
	if err := q.
		Order("clientes.id ASC").
		Offset(skip).
		Limit(limit).
		Find(&clientes).Error; err != nil {

		httperr.Internal(c, "failed_to_list_clientes", "Falha ao listar clientes.")
		return
	}

	httpresp.OK(c, dto.NewClientePublicList(clientes))
}

func (h *ClienteHandler) Get(c *gin.Context) {
	cliente, ok := h.find(c)
	if !ok {
		return
	}
	httpresp.OK(c, dto.NewClientePublic(*cliente))
}

func (h *ClienteHandler) Create(c *gin.Context) {
	var req CreateClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if !validators.IsCPFValid(req.CPF) {
		httperr.BadRequest(c, "invalid_cpf", "cpf deve ter exatamente 11 dígitos")
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

	cliente := models.Cliente{
		UsuarioID:      usuario.ID,
		CPF:            req.CPF,
		Telefone:       req.Telefone,
		Endereco:       req.Endereco,
		DataNascimento: req.DataNascimento,
	}
	if err := h.db.Create(&cliente).Error; err != nil {
		httperr.Internal(c, "failed_to_create_cliente", "Falha ao criar cliente.")
		return
	}
	cliente.Usuario = *usuario

	h.dispatch(c, "cliente_created", cliente.ID)
	httpresp.OK(c, dto.NewClientePublic(cliente))
}

// Update aplica semântica parcial: só telefone e endereco podem mudar,
// e apenas quando presentes no payload.
func (h *ClienteHandler) Update(c *gin.Context) {
	cliente, ok := h.find(c)
	if !ok {
		return
	}

	var req UpdateClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Telefone != nil {
		cliente.Telefone = *req.Telefone
	}
	if req.Endereco != nil {
		cliente.Endereco = *req.Endereco
	}

	if err := h.db.Save(cliente).Error; err != nil {
		httperr.Internal(c, "failed_to_update_cliente", "Falha ao atualizar cliente.")
		return
	}

	h.dispatch(c, "cliente_updated", cliente.ID)
	httpresp.OK(c, dto.NewClientePublic(*cliente))
}

func (h *ClienteHandler) Delete(c *gin.Context) {
	cliente, ok := h.find(c)
	if !ok {
		return
	}

	if err := h.db.Delete(&models.Cliente{}, cliente.ID).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_cliente", "Falha ao deletar cliente.")
		return
	}

	h.dispatch(c, "cliente_deleted", cliente.ID)
	httpresp.Detail(c, "Cliente deletado com sucesso")
}

// --------- Helpers ---------

func (h *ClienteHandler) find(c *gin.Context) (*models.Cliente, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "id inválido")
		return nil, false
	}

	var cliente models.Cliente
	if err := h.db.Preload("Usuario").First(&cliente, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "cliente_not_found", "cliente não encontrado")
			return nil, false
		}
		httperr.Internal(c, "failed_to_get_cliente", "Falha ao buscar cliente.")
		return nil, false
	}
	return &cliente, true
}

func (h *ClienteHandler) dispatch(c *gin.Context, action string, entityID uint) {
	var actorID *uint
	if actor := middleware.CurrentUsuario(c); actor != nil {
		actorID = &actor.ID
	}
	h.audit.Dispatch(audit.Event{
		UsuarioID: actorID,
		Action:    action,
		Entity:    "cliente",
		EntityID:  &entityID,
	})
}
