package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/Imrannnnn/TallieRestaurantApp/internal/domain/reservation"
	"github.com/Imrannnnn/TallieRestaurantApp/internal/httperr"
	"github.com/Imrannnnn/TallieRestaurantApp/internal/models"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

// --------------------------------------------------
// Restaurant
// --------------------------------------------------

func (r *ReservationGormRepository) GetRestaurantByID(
	ctx context.Context,
	id uint,
) (*models.Restaurant, error) {

	var restaurant models.Restaurant
	if err := r.db.WithContext(ctx).First(&restaurant, id).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// --------------------------------------------------
// Table
// --------------------------------------------------

func (r *ReservationGormRepository) GetTable(
	ctx context.Context,
	restaurantID uint,
	tableID uint,
) (*models.Table, error) {

	var table models.Table
	if err := r.db.WithContext(ctx).
		Where("id = ? AND restaurant_id = ?", tableID, restaurantID).
		First(&table).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *ReservationGormRepository) ListTablesWithCapacity(
	ctx context.Context,
	restaurantID uint,
	minCapacity int,
) ([]models.Table, error) {

	var tables []models.Table
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND capacity >= ?", restaurantID, minCapacity).
		Order("capacity ASC").
		Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

// --------------------------------------------------
// Reservation (create / conflict)
// --------------------------------------------------

func (r *ReservationGormRepository) HasOverlap(
	ctx context.Context,
	tableID uint,
	start time.Time,
	end time.Time,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where(
			"table_id = ? AND status IN ? AND start_time < ? AND end_time > ?",
			tableID,
			domain.BlockingStatuses(),
			end,
			start,
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// CreateIfNoConflict runs the overlap check and the insert in one
// transaction, locking the conflicting rows so two concurrent creates for
// the same table serialize instead of double-booking. Returns the
// "time_conflict" business error when the interval is taken.
func (r *ReservationGormRepository) CreateIfNoConflict(
	ctx context.Context,
	res *models.Reservation,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		q := tx.Model(&models.Reservation{})
		// SQLite has no FOR UPDATE; its transactions serialize writers anyway.
		if tx.Dialector.Name() == "postgres" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var count int64
		if err := q.
			Where(
				"table_id = ? AND status IN ? AND start_time < ? AND end_time > ?",
				res.TableID,
				domain.BlockingStatuses(),
				res.EndTime,
				res.StartTime,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness("time_conflict")
		}

		return tx.Create(res).Error
	})
}

// --------------------------------------------------
// Reservation (state change)
// --------------------------------------------------

func (r *ReservationGormRepository) GetReservationByID(
	ctx context.Context,
	id uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).First(&res, id).Error; err != nil {
		return nil, err
	}

	return &res, nil
}

func (r *ReservationGormRepository) UpdateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Save(res).Error
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *ReservationGormRepository) ListReservationsForDay(
	ctx context.Context,
	restaurantID uint,
	start time.Time,
	end time.Time,
) ([]models.Reservation, error) {

	var out []models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Table").
		Where(
			"restaurant_id = ? AND start_time >= ? AND start_time < ?",
			restaurantID, start, end,
		).
		Order("start_time ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}

	return out, nil
}

func (r *ReservationGormRepository) ListBlockingReservationsForTables(
	ctx context.Context,
	tableIDs []uint,
	start time.Time,
	end time.Time,
) ([]models.Reservation, error) {

	if len(tableIDs) == 0 {
		return nil, nil
	}

	var out []models.Reservation
	if err := r.db.WithContext(ctx).
		Select("id", "table_id", "start_time", "end_time").
		Where(
			"table_id IN ? AND status IN ? AND start_time < ? AND end_time > ?",
			tableIDs, domain.BlockingStatuses(), end, start,
		).
		Order("start_time ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}

	return out, nil
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
