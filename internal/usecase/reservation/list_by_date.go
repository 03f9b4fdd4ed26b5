package reservation

import (
	"context"
	"time"

	domain "github.com/Imrannnnn/TallieRestaurantApp/internal/domain/reservation"
	"github.com/Imrannnnn/TallieRestaurantApp/internal/dto"
	"github.com/Imrannnnn/TallieRestaurantApp/internal/httperr"
)

type ListReservationsByDate struct {
	repo domain.Repository
}

func NewListReservationsByDate(
	repo domain.Repository,
) *ListReservationsByDate {
	return &ListReservationsByDate{
		repo: repo,
	}
}

func (uc *ListReservationsByDate) Execute(
	ctx context.Context,
	restaurantID uint,
	date time.Time,
) ([]dto.ReservationListDTO, error) {

	if _, err := uc.repo.GetRestaurantByID(ctx, restaurantID); err != nil {
		return nil, httperr.ErrBusiness("restaurant_not_found")
	}

	start := time.Date(
		date.Year(),
		date.Month(),
		date.Day(),
		0, 0, 0, 0,
		date.Location(),
	)
	end := start.Add(24 * time.Hour)

	reservations, err := uc.repo.ListReservationsForDay(
		ctx,
		restaurantID,
		start,
		end,
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ReservationListDTO, 0, len(reservations))
	for _, res := range reservations {
		out = append(out, dto.ReservationListDTO{
			ID:              res.ID,
			TableID:         res.TableID,
			TableNumber:     res.Table.TableNumber,
			TableCapacity:   res.Table.Capacity,
			CustomerName:    res.CustomerName,
			Phone:           res.Phone,
			PartySize:       res.PartySize,
			StartTime:       res.StartTime,
			EndTime:         res.EndTime,
			DurationMinutes: res.DurationMinutes,
			Status:          res.Status,
		})
	}

	return out, nil
}
