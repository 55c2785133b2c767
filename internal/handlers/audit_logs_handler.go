package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Max-Antonio/lu-estilo-API/internal/httperr"
	"github.com/Max-Antonio/lu-estilo-API/internal/httpresp"
	"github.com/Max-Antonio/lu-estilo-API/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	skip, limit := pagination(c)

	q := h.db.Model(&models.AuditLog{})

	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}
	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}

	var logs []models.AuditLog
	if err := q.
		Order("id DESC").
		Offset(skip).
		Limit(limit).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "failed_to_list_audit_logs", "Falha ao listar auditoria.")
		return
	}

	httpresp.OK(c, logs)
}
