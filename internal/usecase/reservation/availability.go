package reservation

import (
	"context"
	"time"

	"github.com/Imrannnnn/TallieRestaurantApp/internal/cache"
	domain "github.com/Imrannnnn/TallieRestaurantApp/internal/domain/reservation"
	"github.com/Imrannnnn/TallieRestaurantApp/internal/httperr"
	"github.com/Imrannnnn/TallieRestaurantApp/internal/models"
)

type GetAvailability struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
}

func NewGetAvailability(
	repo domain.Repository,
	cache *cache.AvailabilityCache,
) *GetAvailability {
	return &GetAvailability{repo: repo, cache: cache}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.AvailableSlot, error) {

	restaurant, err := uc.repo.GetRestaurantByID(ctx, in.RestaurantID)
	if err != nil {
		return nil, httperr.ErrBusiness("restaurant_not_found")
	}

	dateKey := in.Date.Format("2006-01-02")
	if slots, ok := uc.cache.Get(ctx, in.RestaurantID, dateKey, in.PartySize); ok {
		return slots, nil
	}

	// Smallest adequate table wins each slot, so order by capacity.
	tables, err := uc.repo.ListTablesWithCapacity(
		ctx,
		in.RestaurantID,
		in.PartySize,
	)
	if err != nil {
		return nil, err
	}
	if len(tables) == 0 {
		return []domain.AvailableSlot{}, nil
	}

	loc := in.Date.Location()

	parseHM := func(hm string) time.Time {
		t, _ := time.Parse("15:04", hm)
		return time.Date(
			in.Date.Year(), in.Date.Month(), in.Date.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		)
	}

	openHour := parseHM(restaurant.OpeningTime).Hour()
	closeHour := parseHM(restaurant.ClosingTime).Hour()

	probe := domain.ProbeDurationMinutes * time.Minute

	tableIDs := make([]uint, 0, len(tables))
	for _, t := range tables {
		tableIDs = append(tableIDs, t.ID)
	}

	// One query for the whole day; per-slot checks run in memory.
	dayStart := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		0, 0, 0, 0, loc,
	)
	lastSlotEnd := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		closeHour-1, 45, 0, 0, loc,
	).Add(probe)

	booked, err := uc.repo.ListBlockingReservationsForTables(
		ctx,
		tableIDs,
		dayStart,
		lastSlotEnd,
	)
	if err != nil {
		return nil, err
	}

	byTable := make(map[uint][]models.Reservation, len(tables))
	for _, res := range booked {
		byTable[res.TableID] = append(byTable[res.TableID], res)
	}

	slots := []domain.AvailableSlot{}

	// Whole hours only: a closing minute like "22:30" drops the final
	// partial hour of slots.
	for hour := openHour; hour < closeHour; hour++ {
		for minute := 0; minute < 60; minute += domain.SlotStepMinutes {

			slotStart := time.Date(
				in.Date.Year(), in.Date.Month(), in.Date.Day(),
				hour, minute, 0, 0, loc,
			)
			slotEnd := slotStart.Add(probe)

			for _, table := range tables {
				free := true
				for _, res := range byTable[table.ID] {
					if domain.Overlaps(slotStart, slotEnd, res.StartTime, res.EndTime) {
						free = false
						break
					}
				}
				if free {
					slots = append(slots, domain.AvailableSlot{
						Time:        slotStart.Format(time.RFC3339),
						TableID:     table.ID,
						TableNumber: table.TableNumber,
					})
					break
				}
			}
		}
	}

	uc.cache.Set(ctx, in.RestaurantID, dateKey, in.PartySize, slots)

	return slots, nil
}
