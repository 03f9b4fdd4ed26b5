package reservation

import (
	"context"
	"errors"
	"sort"
	"time"

	domain "github.com/Imrannnnn/TallieRestaurantApp/internal/domain/reservation"
	"github.com/Imrannnnn/TallieRestaurantApp/internal/httperr"
	"github.com/Imrannnnn/TallieRestaurantApp/internal/models"
)

var errNotFound = errors.New("record not found")

// fakeRepo is an in-memory domain.Repository for use-case tests.
type fakeRepo struct {
	restaurants  map[uint]models.Restaurant
	tables       map[uint]models.Table
	reservations map[uint]models.Reservation
	nextID       uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		restaurants:  map[uint]models.Restaurant{},
		tables:       map[uint]models.Table{},
		reservations: map[uint]models.Reservation{},
	}
}

func (f *fakeRepo) addRestaurant(r models.Restaurant) models.Restaurant {
	f.nextID++
	r.ID = f.nextID
	f.restaurants[r.ID] = r
	return r
}

func (f *fakeRepo) addTable(tb models.Table) models.Table {
	f.nextID++
	tb.ID = f.nextID
	f.tables[tb.ID] = tb
	return tb
}

func (f *fakeRepo) addReservation(res models.Reservation) models.Reservation {
	f.nextID++
	res.ID = f.nextID
	if res.EndTime.IsZero() {
		res.EndTime = domain.EndTime(res.StartTime, res.DurationMinutes)
	}
	f.reservations[res.ID] = res
	return res
}

func (f *fakeRepo) GetRestaurantByID(_ context.Context, id uint) (*models.Restaurant, error) {
	r, ok := f.restaurants[id]
	if !ok {
		return nil, errNotFound
	}
	return &r, nil
}

func (f *fakeRepo) GetTable(_ context.Context, restaurantID, tableID uint) (*models.Table, error) {
	tb, ok := f.tables[tableID]
	if !ok || tb.RestaurantID != restaurantID {
		return nil, errNotFound
	}
	return &tb, nil
}

func (f *fakeRepo) ListTablesWithCapacity(_ context.Context, restaurantID uint, minCapacity int) ([]models.Table, error) {
	var out []models.Table
	for _, tb := range f.tables {
		if tb.RestaurantID == restaurantID && tb.Capacity >= minCapacity {
			out = append(out, tb)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Capacity < out[j].Capacity })
	return out, nil
}

func (f *fakeRepo) HasOverlap(_ context.Context, tableID uint, start, end time.Time) (bool, error) {
	for _, res := range f.reservations {
		if res.TableID != tableID || !domain.Blocks(domain.Status(res.Status)) {
			continue
		}
		if domain.Overlaps(start, end, res.StartTime, res.EndTime) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) CreateIfNoConflict(ctx context.Context, res *models.Reservation) error {
	conflict, err := f.HasOverlap(ctx, res.TableID, res.StartTime, res.EndTime)
	if err != nil {
		return err
	}
	if conflict {
		return httperr.ErrBusiness("time_conflict")
	}

	f.nextID++
	res.ID = f.nextID
	res.CreatedAt = time.Now().UTC()
	f.reservations[res.ID] = *res
	return nil
}

func (f *fakeRepo) GetReservationByID(_ context.Context, id uint) (*models.Reservation, error) {
	res, ok := f.reservations[id]
	if !ok {
		return nil, errNotFound
	}
	return &res, nil
}

func (f *fakeRepo) UpdateReservation(_ context.Context, res *models.Reservation) error {
	if _, ok := f.reservations[res.ID]; !ok {
		return errNotFound
	}
	f.reservations[res.ID] = *res
	return nil
}

func (f *fakeRepo) ListReservationsForDay(_ context.Context, restaurantID uint, start, end time.Time) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, res := range f.reservations {
		if res.RestaurantID != restaurantID {
			continue
		}
		if !res.StartTime.Before(start) && res.StartTime.Before(end) {
			res.Table = f.tables[res.TableID]
			out = append(out, res)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (f *fakeRepo) ListBlockingReservationsForTables(_ context.Context, tableIDs []uint, start, end time.Time) ([]models.Reservation, error) {
	wanted := map[uint]bool{}
	for _, id := range tableIDs {
		wanted[id] = true
	}

	var out []models.Reservation
	for _, res := range f.reservations {
		if !wanted[res.TableID] || !domain.Blocks(domain.Status(res.Status)) {
			continue
		}
		if domain.Overlaps(start, end, res.StartTime, res.EndTime) {
			out = append(out, res)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*fakeRepo)(nil)
