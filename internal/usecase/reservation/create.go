package reservation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Imrannnnn/TallieRestaurantApp/internal/audit"
	"github.com/Imrannnnn/TallieRestaurantApp/internal/cache"
	domain "github.com/Imrannnnn/TallieRestaurantApp/internal/domain/reservation"
	"github.com/Imrannnnn/TallieRestaurantApp/internal/httperr"
	"github.com/Imrannnnn/TallieRestaurantApp/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	RestaurantID uint
	TableID      uint

	CustomerName string
	Phone        string
	PartySize    int

	StartTime       time.Time
	DurationMinutes int
}

// CapacityError carries the numbers needed for a readable message.
type CapacityError struct {
	Capacity  int
	PartySize int
}

func (e CapacityError) Error() string {
	return fmt.Sprintf(
		"party size %d exceeds table capacity of %d seats",
		e.PartySize, e.Capacity,
	)
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
}

func NewCreateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.AvailabilityCache,
) *CreateReservation {
	return &CreateReservation{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	// --------------------------------------------------
	// 1. Restaurant
	// --------------------------------------------------
	restaurant, err := uc.repo.GetRestaurantByID(ctx, in.RestaurantID)
	if err != nil {
		return nil, httperr.ErrBusiness("restaurant_not_found")
	}

	// --------------------------------------------------
	// 2. Table, scoped to the restaurant
	// --------------------------------------------------
	table, err := uc.repo.GetTable(ctx, in.RestaurantID, in.TableID)
	if err != nil {
		return nil, httperr.ErrBusiness("table_not_found")
	}

	// --------------------------------------------------
	// 3. Capacity
	// --------------------------------------------------
	if in.PartySize > table.Capacity {
		return nil, CapacityError{
			Capacity:  table.Capacity,
			PartySize: in.PartySize,
		}
	}

	// --------------------------------------------------
	// 4. Operating hours
	// --------------------------------------------------
	end := domain.EndTime(in.StartTime, in.DurationMinutes)
	if !domain.WithinOperatingHours(restaurant, in.StartTime, end) {
		return nil, httperr.ErrBusiness("outside_opening_hours")
	}

	// --------------------------------------------------
	// 5. Overlap check + insert, one transaction
	// --------------------------------------------------
	res := &models.Reservation{
		RestaurantID:     in.RestaurantID,
		TableID:          in.TableID,
		CustomerName:     in.CustomerName,
		Phone:            in.Phone,
		PartySize:        in.PartySize,
		StartTime:        in.StartTime,
		DurationMinutes:  in.DurationMinutes,
		EndTime:          end,
		Status:           string(domain.InitialStatus()),
		ConfirmationCode: uuid.NewString(),
	}

	if err := uc.repo.CreateIfNoConflict(ctx, res); err != nil {
		if httperr.IsBusiness(err, "time_conflict") {
			uc.audit.Dispatch(audit.Event{
				RestaurantID: in.RestaurantID,
				Action:       "reservation_conflict",
				Entity:       "reservation",
				Metadata: map[string]any{
					"table_id": in.TableID,
					"start":    in.StartTime,
					"end":      end,
				},
			})
		}
		return nil, err
	}

	uc.cache.Invalidate(ctx, in.RestaurantID)

	uc.audit.Dispatch(audit.Event{
		RestaurantID: in.RestaurantID,
		Action:       "reservation_created",
		Entity:       "reservation",
		EntityID:     &res.ID,
	})

	return res, nil
}
