package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Max-Antonio/lu-estilo-API/internal/audit"
	"github.com/Max-Antonio/lu-estilo-API/internal/dto"
	"github.com/Max-Antonio/lu-estilo-API/internal/httperr"
	"github.com/Max-Antonio/lu-estilo-API/internal/httpresp"
	"github.com/Max-Antonio/lu-estilo-API/internal/middleware"
	"github.com/Max-Antonio/lu-estilo-API/internal/models"
)

type ProdutoHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewProdutoHandler(db *gorm.DB, auditd *audit.Dispatcher) *ProdutoHandler {
	return &ProdutoHandler{db: db, audit: auditd}
}

// --------- Requests ---------

type CreateProdutoRequest struct {
	Categoria  string  `json:"categoria" binding:"required"`
	Secao      string  `json:"secao" binding:"required"`
	Preco      float64 `json:"preco" binding:"min=0"`
	Disponivel *bool   `json:"disponivel"`
}

type UpdateProdutoRequest struct {
	Categoria  *string  `json:"categoria,omitempty"`
	Secao      *string  `json:"secao,omitempty"`
	Preco      *float64 `json:"preco,omitempty"`
	Disponivel *bool    `json:"disponivel,omitempty"`
}

// --------- Handlers ---------

func (h *ProdutoHandler) List(c *gin.Context) {
	skip, limit := pagination(c)

	q := h.db.Model(&models.Produto{})

	if categoria := c.Query("categoria"); categoria != "" {
		q = q.Where("categoria = ?", categoria)
	}
	if precoStr := c.Query("preco"); precoStr != "" {
		if preco, err := strconv.ParseFloat(precoStr, 64); err == nil {
			q = q.Where("preco = ?", preco)
		}
	}
	if dispStr := c.Query("disponivel"); dispStr != "" {
		if disp, err := strconv.ParseBool(dispStr); err == nil {
			q = q.Where("disponivel = ?", disp)
		}
	}

	var produtos []models.Produto
	if err := q.
		Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&produtos).Error; err != nil {

		httperr.Internal(c, "failed_to_list_produtos", "Falha ao listar produtos.")
		return
	}

	httpresp.OK(c, dto.NewProdutoPublicList(produtos))
}

func (h *ProdutoHandler) Get(c *gin.Context) {
	produto, ok := h.find(c)
	if !ok {
		return
	}
	httpresp.OK(c, dto.NewProdutoPublic(*produto))
}

func (h *ProdutoHandler) Create(c *gin.Context) {
	var req CreateProdutoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Preco < 0 {
		httperr.BadRequest(c, "invalid_preco", "preco não pode ser negativo")
		return
	}

	// disponivel omitido vale true; false explícito é respeitado
	disponivel := true
	if req.Disponivel != nil {
		disponivel = *req.Disponivel
	}

	produto := models.Produto{
		Categoria:  req.Categoria,
		Secao:      req.Secao,
		Preco:      req.Preco,
		Disponivel: disponivel,
	}
	if err := h.db.Create(&produto).Error; err != nil {
		httperr.Internal(c, "failed_to_create_produto", "Falha ao criar produto.")
		return
	}

	h.dispatch(c, "produto_created", produto.ID)
	httpresp.OK(c, dto.NewProdutoPublic(produto))
}

func (h *ProdutoHandler) Update(c *gin.Context) {
	produto, ok := h.find(c)
	if !ok {
		return
	}

	var req UpdateProdutoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Preco != nil && *req.Preco < 0 {
		httperr.BadRequest(c, "invalid_preco", "preco não pode ser negativo")
		return
	}

	if req.Categoria != nil {
		produto.Categoria = *req.Categoria
	}
	if req.Secao != nil {
		produto.Secao = *req.Secao
	}
	if req.Preco != nil {
		produto.Preco = *req.Preco
	}
	if req.Disponivel != nil {
		produto.Disponivel = *req.Disponivel
	}

	if err := h.db.Save(produto).Error; err != nil {
		httperr.Internal(c, "failed_to_update_produto", "Falha ao atualizar produto.")
		return
	}

	h.dispatch(c, "produto_updated", produto.ID)
	httpresp.OK(c, dto.NewProdutoPublic(*produto))
}

func (h *ProdutoHandler) Delete(c *gin.Context) {
	produto, ok := h.find(c)
	if !ok {
		return
	}

	// linhas de junção com pedidos caem junto
	if err := h.db.Where("produto_id = ?", produto.ID).
		Delete(&models.PedidoProduto{}).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_produto", "Falha ao deletar produto.")
		return
	}

	if err := h.db.Delete(&models.Produto{}, produto.ID).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_produto", "Falha ao deletar produto.")
		return
	}

	h.dispatch(c, "produto_deleted", produto.ID)
	httpresp.Detail(c, "Produto deletado com sucesso")
}

// --------- Helpers ---------

func (h *ProdutoHandler) find(c *gin.Context) (*models.Produto, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "id inválido")
		return nil, false
	}

	var produto models.Produto
	if err := h.db.First(&produto, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "produto_not_found", "produto não encontrado")
			return nil, false
		}
		httperr.Internal(c, "failed_to_get_produto", "Falha ao buscar produto.")
		return nil, false
	}
	return &produto, true
}

func (h *ProdutoHandler) dispatch(c *gin.Context, action string, entityID uint) {
	var actorID *uint
	if actor := middleware.CurrentUsuario(c); actor != nil {
		actorID = &actor.ID
	}
	h.audit.Dispatch(audit.Event{
		UsuarioID: actorID,
		Action:    action,
		Entity:    "produto",
		EntityID:  &entityID,
	})
}
