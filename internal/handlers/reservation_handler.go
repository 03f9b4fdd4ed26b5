package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Imrannnnn/TallieRestaurantApp/internal/httperr"
	ucReservation "github.com/Imrannnnn/TallieRestaurantApp/internal/usecase/reservation"
	"github.com/Imrannnnn/TallieRestaurantApp/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	createUC     *ucReservation.CreateReservation
	cancelUC     *ucReservation.CancelReservation
	listByDateUC *ucReservation.ListReservationsByDate
}

func NewReservationHandler(
	createUC *ucReservation.CreateReservation,
	cancelUC *ucReservation.CancelReservation,
	listByDateUC *ucReservation.ListReservationsByDate,
) *ReservationHandler {
	return &ReservationHandler{
		createUC:     createUC,
		cancelUC:     cancelUC,
		listByDateUC: listByDateUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	RestaurantID uint `json:"restaurant_id" binding:"required"`
	TableID      uint `json:"table_id" binding:"required"`

	CustomerName string `json:"customer_name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	PartySize    int    `json:"party_size" binding:"required,gt=0"`

	StartTime       time.Time `json:"start_time" binding:"required"`
	DurationMinutes int       `json:"duration_minutes" binding:"required,gte=15"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeValidationError(c, bindingDetails(err))
		return
	}

	if !validators.IsPhoneValid(req.Phone) {
		writeValidationError(c, map[string]string{
			"phone": "must contain at least 10 digits",
		})
		return
	}

	res, err := h.createUC.Execute(c.Request.Context(), ucReservation.CreateReservationInput{
		RestaurantID:    req.RestaurantID,
		TableID:         req.TableID,
		CustomerName:    req.CustomerName,
		Phone:           req.Phone,
		PartySize:       req.PartySize,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
	})

	if err != nil {
		var capErr ucReservation.CapacityError
		switch {
		case httperr.IsBusiness(err, "restaurant_not_found"):
			httperr.NotFound(c, "restaurant_not_found", "Restaurant not found.")
		case httperr.IsBusiness(err, "table_not_found"):
			httperr.NotFound(c, "table_not_found", "Table not found in this restaurant.")
		case errors.As(err, &capErr):
			httperr.BadRequest(
				c,
				"capacity_exceeded",
				fmt.Sprintf(
					"Party size %d exceeds table capacity of %d seats.",
					capErr.PartySize, capErr.Capacity,
				),
			)
		case httperr.IsBusiness(err, "outside_opening_hours"):
			httperr.BadRequest(
				c,
				"outside_opening_hours",
				"Requested time falls outside the hours the restaurant is open.",
			)
		case httperr.IsBusiness(err, "time_conflict"):
			httperr.Conflict(
				c,
				"time_conflict",
				"Table is already booked for the requested time.",
			)
		default:
			httperr.Internal(c, "failed_to_create_reservation", "Could not create reservation.")
		}
		return
	}

	c.JSON(http.StatusCreated, res)
}

// ======================================================
// CANCEL
// ======================================================

func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.NotFound(c, "reservation_not_found", "Reservation not found.")
		return
	}

	res, err := h.cancelUC.Execute(c.Request.Context(), uint(id))
	if err != nil {
		if httperr.IsBusiness(err, "reservation_not_found") {
			httperr.NotFound(c, "reservation_not_found", "Reservation not found.")
			return
		}
		httperr.Internal(c, "failed_to_cancel_reservation", "Could not cancel reservation.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Reservation cancelled.",
		"id":      res.ID,
	})
}

// ======================================================
// LIST BY DATE
// ======================================================

func (h *ReservationHandler) ListByDate(c *gin.Context) {
	restaurantID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.NotFound(c, "restaurant_not_found", "Restaurant not found.")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", c.Param("date"), time.UTC)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be formatted YYYY-MM-DD.")
		return
	}

	out, err := h.listByDateUC.Execute(c.Request.Context(), uint(restaurantID), date)
	if err != nil {
		if httperr.IsBusiness(err, "restaurant_not_found") {
			httperr.NotFound(c, "restaurant_not_found", "Restaurant not found.")
			return
		}
		httperr.Internal(c, "failed_to_list_reservations", "Could not list reservations.")
		return
	}

	c.JSON(http.StatusOK, out)
}
