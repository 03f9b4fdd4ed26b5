package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Imrannnnn/TallieRestaurantApp/internal/httperr"
	"github.com/Imrannnnn/TallieRestaurantApp/internal/middleware"
	"github.com/Imrannnnn/TallieRestaurantApp/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	c.JSON(http.StatusOK, user)
}
