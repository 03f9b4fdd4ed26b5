package reservation

import (
	"context"
	"time"

	"github.com/Imrannnnn/TallieRestaurantApp/internal/audit"
	"github.com/Imrannnnn/TallieRestaurantApp/internal/cache"
	domain "github.com/Imrannnnn/TallieRestaurantApp/internal/domain/reservation"
	"github.com/Imrannnnn/TallieRestaurantApp/internal/httperr"
	"github.com/Imrannnnn/TallieRestaurantApp/internal/models"
)

type CancelReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
}

func NewCancelReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.AvailabilityCache,
) *CancelReservation {
	return &CancelReservation{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func (uc *CancelReservation) Execute(
	ctx context.Context,
	reservationID uint,
) (*models.Reservation, error) {

	res, err := uc.repo.GetReservationByID(ctx, reservationID)
	if err != nil {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}

	// Unconditional transition: cancelling a cancelled, completed or past
	// reservation is allowed. The row is kept, never deleted.
	domain.Cancel(res, time.Now().UTC())

	if err := uc.repo.UpdateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, res.RestaurantID)

	uc.audit.Dispatch(audit.Event{
		RestaurantID: res.RestaurantID,
		Action:       "reservation_cancelled",
		Entity:       "reservation",
		EntityID:     &res.ID,
	})

	return res, nil
}
