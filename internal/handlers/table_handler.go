package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Imrannnnn/TallieRestaurantApp/internal/audit"
	dbpkg "github.com/Imrannnnn/TallieRestaurantApp/internal/db"
	"github.com/Imrannnnn/TallieRestaurantApp/internal/httperr"
	"github.com/Imrannnnn/TallieRestaurantApp/internal/models"
)

type TableHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewTableHandler(db *gorm.DB, audit *audit.Dispatcher) *TableHandler {
	return &TableHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateTableRequest struct {
	TableNumber int `json:"table_number" binding:"required,gt=0"`
	Capacity    int `json:"capacity" binding:"required,gt=0"`
}

// --------- Handlers ---------

func (h *TableHandler) Create(c *gin.Context) {
	restaurantID := c.Param("id")

	var restaurant models.Restaurant
	if err := h.db.First(&restaurant, restaurantID).Error; err != nil {
		httperr.NotFound(c, "restaurant_not_found", "Restaurant not found.")
		return
	}

	var req CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeValidationError(c, bindingDetails(err))
		return
	}

	table := models.Table{
		RestaurantID: restaurant.ID,
		TableNumber:  req.TableNumber,
		Capacity:     req.Capacity,
	}

	if err := h.db.Create(&table).Error; err != nil {
		if dbpkg.IsUniqueViolation(err) {
			httperr.Conflict(
				c,
				"duplicate_table_number",
				"A table with this number already exists in the restaurant.",
			)
			return
		}
		httperr.Internal(c, "failed_to_create_table", "Could not create table.")
		return
	}

	h.audit.Dispatch(audit.Event{
		RestaurantID: restaurant.ID,
		Action:       "table_created",
		Entity:       "table",
		EntityID:     &table.ID,
	})

	c.JSON(http.StatusCreated, table)
}
