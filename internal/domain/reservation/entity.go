package reservation

import (
	"time"

	"github.com/Imrannnnn/TallieRestaurantApp/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Cancel transitions a reservation to cancelled. The transition is
// unconditional: cancelling an already cancelled, completed or past
// reservation is allowed and idempotent by effect. History is preserved,
// rows are never deleted.
func Cancel(res *models.Reservation, now time.Time) {
	res.Status = string(StatusCancelled)
	res.CancelledAt = &now
}

// EndTime computes the exclusive end of a reservation interval.
func EndTime(start time.Time, durationMinutes int) time.Time {
	return start.Add(time.Duration(durationMinutes) * time.Minute)
}
