package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/justconnect/justconnect-api/internal/httperr"
	"github.com/justconnect/justconnect-api/internal/httpresp"
	"github.com/justconnect/justconnect-api/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List returns the most recent audit entries, newest first.
func (h *AuditLogsHandler) List(c *gin.Context) {
	var logs []models.AuditLog
	if err := h.db.
		Order("id DESC").
		Limit(100).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, err, "failed to list audit logs")
		return
	}

	httpresp.OK(c, "audit logs retrieved", gin.H{
		"count": len(logs),
		"logs":  logs,
	})
}
