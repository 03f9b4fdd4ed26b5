package reservation

import (
	"context"
	"time"

	"github.com/Imrannnnn/TallieRestaurantApp/internal/models"
)

type Repository interface {
	// -------- Restaurant --------
	GetRestaurantByID(
		ctx context.Context,
		id uint,
	) (*models.Restaurant, error)

	// -------- Table --------
	GetTable(
		ctx context.Context,
		restaurantID uint,
		tableID uint,
	) (*models.Table, error)

	ListTablesWithCapacity(
		ctx context.Context,
		restaurantID uint,
		minCapacity int,
	) ([]models.Table, error)

	// -------- Reservation (create / conflict) --------

	// CreateIfNoConflict inserts the reservation unless a blocking
	// reservation on the same table overlaps its interval; the check and
	// the insert run in one transaction.
	CreateIfNoConflict(
		ctx context.Context,
		res *models.Reservation,
	) error

	HasOverlap(
		ctx context.Context,
		tableID uint,
		start time.Time,
		end time.Time,
	) (bool, error)

	// -------- Reservation (state change) --------
	GetReservationByID(
		ctx context.Context,
		id uint,
	) (*models.Reservation, error)

	UpdateReservation(
		ctx context.Context,
		res *models.Reservation,
	) error

	// -------- Listing --------
	ListReservationsForDay(
		ctx context.Context,
		restaurantID uint,
		start time.Time,
		end time.Time,
	) ([]models.Reservation, error)

	ListBlockingReservationsForTables(
		ctx context.Context,
		tableIDs []uint,
		start time.Time,
		end time.Time,
	) ([]models.Reservation, error)
}
