package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Max-Antonio/lu-estilo-API/internal/audit"
	domain "github.com/Max-Antonio/lu-estilo-API/internal/domain/pedido"
	"github.com/Max-Antonio/lu-estilo-API/internal/dto"
	"github.com/Max-Antonio/lu-estilo-API/internal/httperr"
	"github.com/Max-Antonio/lu-estilo-API/internal/httpresp"
	"github.com/Max-Antonio/lu-estilo-API/internal/middleware"
	"github.com/Max-Antonio/lu-estilo-API/internal/models"
)

type PedidoHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewPedidoHandler(db *gorm.DB, auditd *audit.Dispatcher) *PedidoHandler {
	return &PedidoHandler{db: db, audit: auditd}
}

// --------- Requests ---------

type CreatePedidoRequest struct {
	ClienteID  uint          `json:"cliente_id" binding:"required"`
	ProdutosID []uint        `json:"produtos_id"`
	Status     domain.Status `json:"status"`
	DataInicio *time.Time    `json:"data_inicio"`
	DataFim    *time.Time    `json:"data_fim"`
}

type UpdatePedidoRequest struct {
	ClienteID  *uint          `json:"cliente_id,omitempty"`
	Status     *domain.Status `json:"status,omitempty"`
	DataInicio *time.Time     `json:"data_inicio,omitempty"`
	DataFim    *time.Time     `json:"data_fim,omitempty"`
}

// --------- Handlers ---------

func (h *PedidoHandler) List(c *gin.Context) {
	skip, limit := pagination(c)

	q := h.db.Model(&models.Pedido{}).
		Preload("Cliente").
		Preload("Cliente.Usuario").
		Preload("Produtos")

	if v := c.Query("data_inicio"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			q = q.Where("pedidos.data_inicio >= ?", t)
		}
	}
	if v := c.Query("data_fim"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			q = q.Where("pedidos.data_fim <= ?", t)
		}
	}
	if secao := c.Query("secao_produtos"); secao != "" {
		q = q.
			Joins("JOIN pedido_produtos ON pedido_produtos.pedido_id = pedidos.id").
			Joins("JOIN produtos ON produtos.id = pedido_produtos.produto_id").
			Where("produtos.secao = ?", secao).
			Distinct("pedidos.*")
	}
	if v := c.Query("id_pedido"); v != "" {
		q = q.Where("pedidos.id = ?", v)
	}
	if v := c.Query("pedido_status"); v != "" {
		q = q.Where("pedidos.status = ?", v)
	}
	if v := c.Query("id_cliente"); v != "" {
		q = q.Where("pedidos.cliente_id = ?", v)
	}

	var pedidos []models.Pedido
	if err := q.
		Order("pedidos.id ASC").
		Offset(skip).
		Limit(limit).
		Find(&pedidos).Error; err != nil {

		httperr.Internal(c, "failed_to_list_pedidos", "Falha ao listar pedidos.")
		return
	}

	httpresp.OK(c, dto.NewPedidoPublicList(pedidos))
}

func (h *PedidoHandler) Get(c *gin.Context) {
	pedido, ok := h.find(c)
	if !ok {
		return
	}
	httpresp.OK(c, dto.NewPedidoPublic(*pedido))
}

// Create valida cliente e todos os produtos antes de persistir
// qualquer coisa: referência inexistente é 404, nunca aceite
// silencioso.
func (h *PedidoHandler) Create(c *gin.Context) {
	var req CreatePedidoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var cliente models.Cliente
	if err := h.db.First(&cliente, req.ClienteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "cliente_not_found",
				fmt.Sprintf("cliente com o id %d não encontrado", req.ClienteID))
			return
		}
		httperr.Internal(c, "failed_to_get_cliente", "Falha ao buscar cliente.")
		return
	}

	produtos := make([]models.Produto, 0, len(req.ProdutosID))
	for _, produtoID := range req.ProdutosID {
		var produto models.Produto
		if err := h.db.First(&produto, produtoID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				httperr.NotFound(c, "produto_not_found",
					fmt.Sprintf("produto com o id %d não encontrado", produtoID))
				return
			}
			httperr.Internal(c, "failed_to_get_produto", "Falha ao buscar produto.")
			return
		}
		produtos = append(produtos, produto)
	}

	status := domain.InitialStatus()
	if req.Status != "" {
		if !req.Status.IsValid() {
			httperr.BadRequest(c, "invalid_status", "status de pedido inválido")
			return
		}
		status = req.Status
	}

	pedido := models.Pedido{
		ClienteID: req.ClienteID,
		Status:    status,
		DataFim:   req.DataFim,
		Produtos:  produtos,
	}
	if req.DataInicio != nil {
		pedido.DataInicio = *req.DataInicio
	}

	if err := h.db.Omit("Cliente").Create(&pedido).Error; err != nil {
		httperr.Internal(c, "failed_to_create_pedido", "Falha ao criar pedido.")
		return
	}
	pedido.Cliente = cliente

	h.dispatch(c, "pedido_created", pedido.ID)
	httpresp.OK(c, dto.NewPedidoPublic(pedido))
}

// Update aplica semântica parcial. Nenhuma tabela de transição de
// status é imposta aqui; domain/pedido.CanTransition existe para quem
// quiser o fluxo estrito.
func (h *PedidoHandler) Update(c *gin.Context) {
	pedido, ok := h.find(c)
	if !ok {
		return
	}

	var req UpdatePedidoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.ClienteID != nil {
		var cliente models.Cliente
		if err := h.db.First(&cliente, *req.ClienteID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				httperr.NotFound(c, "cliente_not_found",
					fmt.Sprintf("cliente com o id %d não encontrado", *req.ClienteID))
				return
			}
			httperr.Internal(c, "failed_to_get_cliente", "Falha ao buscar cliente.")
			return
		}
		pedido.ClienteID = *req.ClienteID
		pedido.Cliente = cliente
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			httperr.BadRequest(c, "invalid_status", "status de pedido inválido")
			return
		}
		pedido.Status = *req.Status
	}
	if req.DataInicio != nil {
		pedido.DataInicio = *req.DataInicio
	}
	if req.DataFim != nil {
		pedido.DataFim = req.DataFim
	}

	if err := h.db.Omit("Produtos", "Cliente").Save(pedido).Error; err != nil {
		httperr.Internal(c, "failed_to_update_pedido", "Falha ao atualizar pedido.")
		return
	}

	h.dispatch(c, "pedido_updated", pedido.ID)
	httpresp.OK(c, dto.NewPedidoPublic(*pedido))
}

func (h *PedidoHandler) Delete(c *gin.Context) {
	pedido, ok := h.find(c)
	if !ok {
		return
	}

	// junção primeiro, depois o pedido
	if err := h.db.Where("pedido_id = ?", pedido.ID).
		Delete(&models.PedidoProduto{}).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_pedido", "Falha ao deletar pedido.")
		return
	}
	if err := h.db.Delete(&models.Pedido{}, pedido.ID).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_pedido", "Falha ao deletar pedido.")
		return
	}

	h.dispatch(c, "pedido_deleted", pedido.ID)
	httpresp.Detail(c, "Pedido deletado com sucesso")
}

// --------- Helpers ---------

func (h *PedidoHandler) find(c *gin.Context) (*models.Pedido, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "id inválido")
		return nil, false
	}

	var pedido models.Pedido
	if err := h.db.
		Preload("Cliente").
		Preload("Cliente.Usuario").
		Preload("Produtos").
		First(&pedido, id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "pedido_not_found", "pedido não encontrado")
			return nil, false
		}
		httperr.Internal(c, "failed_to_get_pedido", "Falha ao buscar pedido.")
		return nil, false
	}
	return &pedido, true
}

func (h *PedidoHandler) dispatch(c *gin.Context, action string, entityID uint) {
	var actorID *uint
	if actor := middleware.CurrentUsuario(c); actor != nil {
		actorID = &actor.ID
	}
	h.audit.Dispatch(audit.Event{
		UsuarioID: actorID,
		Action:    action,
		Entity:    "pedido",
		EntityID:  &entityID,
	})
}
