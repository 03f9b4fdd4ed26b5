package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Imrannnnn/TallieRestaurantApp/internal/audit"
	"github.com/Imrannnnn/TallieRestaurantApp/internal/httperr"
	"github.com/Imrannnnn/TallieRestaurantApp/internal/httpresp"
	"github.com/Imrannnnn/TallieRestaurantApp/internal/models"
	"github.com/Imrannnnn/TallieRestaurantApp/internal/validators"
)

type RestaurantHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewRestaurantHandler(db *gorm.DB, audit *audit.Dispatcher) *RestaurantHandler {
	return &RestaurantHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateRestaurantRequest struct {
	Name        string `json:"name" binding:"required"`
	OpeningTime string `json:"opening_time" binding:"required"`
	ClosingTime string `json:"closing_time" binding:"required"`
}

// --------- Handlers ---------

func (h *RestaurantHandler) Create(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeValidationError(c, bindingDetails(err))
		return
	}

	details := map[string]string{}
	if !validators.IsHHMM(req.OpeningTime) {
		details["opening_time"] = "must be a zero-padded HH:MM string"
	}
	if !validators.IsHHMM(req.ClosingTime) {
		details["closing_time"] = "must be a zero-padded HH:MM string"
	}
	if len(details) > 0 {
		writeValidationError(c, details)
		return
	}

	restaurant := models.Restaurant{
		Name:        req.Name,
		OpeningTime: req.OpeningTime,
		ClosingTime: req.ClosingTime,
	}

	if err := h.db.Create(&restaurant).Error; err != nil {
		httperr.Internal(c, "failed_to_create_restaurant", "Could not create restaurant.")
		return
	}

	h.audit.Dispatch(audit.Event{
		RestaurantID: restaurant.ID,
		Action:       "restaurant_created",
		Entity:       "restaurant",
		EntityID:     &restaurant.ID,
	})

	c.JSON(http.StatusCreated, restaurant)
}

func (h *RestaurantHandler) List(c *gin.Context) {
	var restaurants []models.Restaurant
	if err := h.db.Order("id ASC").Find(&restaurants).Error; err != nil {
		httperr.Internal(c, "failed_to_list_restaurants", "Could not list restaurants.")
		return
	}

	c.JSON(http.StatusOK, restaurants)
}

func (h *RestaurantHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var restaurant models.Restaurant
	if err := h.db.Preload("Tables").First(&restaurant, id).Error; err != nil {
		httperr.NotFound(c, "restaurant_not_found", "Restaurant not found.")
		return
	}

	httpresp.OK(c, restaurant)
}
