package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/Imrannnnn/TallieRestaurantApp/internal/domain/reservation"
	"github.com/Imrannnnn/TallieRestaurantApp/internal/httperr"
	ucReservation "github.com/Imrannnnn/TallieRestaurantApp/internal/usecase/reservation"
)

type AvailabilityHandler struct {
	availabilityUC *ucReservation.GetAvailability
}

func NewAvailabilityHandler(
	availabilityUC *ucReservation.GetAvailability,
) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityUC: availabilityUC}
}

func (h *AvailabilityHandler) Get(c *gin.Context) {
	restaurantIDStr := c.Query("restaurant_id")
	dateStr := c.Query("date")
	partySizeStr := c.Query("party_size")

	if restaurantIDStr == "" || dateStr == "" || partySizeStr == "" {
		httperr.BadRequest(
			c,
			"missing_parameters",
			"restaurant_id, date and party_size are required.",
		)
		return
	}

	restaurantID, err := strconv.ParseUint(restaurantIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_restaurant_id", "restaurant_id must be a positive integer.")
		return
	}

	partySize, err := strconv.Atoi(partySizeStr)
	if err != nil || partySize <= 0 {
		httperr.BadRequest(c, "invalid_party_size", "party_size must be a positive integer.")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, time.UTC)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be formatted YYYY-MM-DD.")
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), domain.AvailabilityInput{
		RestaurantID: uint(restaurantID),
		Date:         date,
		PartySize:    partySize,
	})
	if err != nil {
		if httperr.IsBusiness(err, "restaurant_not_found") {
			httperr.NotFound(c, "restaurant_not_found", "Restaurant not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_availability", "Could not compute availability.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"available_slots": slots})
}
