package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Imrannnnn/TallieRestaurantApp/internal/httperr"
	"github.com/Imrannnnn/TallieRestaurantApp/internal/httpresp"
	"github.com/Imrannnnn/TallieRestaurantApp/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

const auditLogsPageSize = 100

func (h *AuditLogsHandler) List(c *gin.Context) {
	q := h.db.Model(&models.AuditLog{})

	if rid := c.Query("restaurant_id"); rid != "" {
		id, err := strconv.ParseUint(rid, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_restaurant_id", "restaurant_id must be a positive integer.")
			return
		}
		q = q.Where("restaurant_id = ?", uint(id))
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(auditLogsPageSize).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "Could not list audit logs.")
		return
	}

	httpresp.List(c, logs)
}
