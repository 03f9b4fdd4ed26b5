package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/Imrannnnn/TallieRestaurantApp/internal/domain/reservation"
	"github.com/Imrannnnn/TallieRestaurantApp/internal/httperr"
	"github.com/Imrannnnn/TallieRestaurantApp/internal/models"
)

func TestCancelReservationNotFound(t *testing.T) {
	uc := NewCancelReservation(newFakeRepo(), newDispatcher(), nil)

	_, err := uc.Execute(context.Background(), 42)
	assert.True(t, httperr.IsBusiness(err, "reservation_not_found"))
}

func TestCancelReservationKeepsRow(t *testing.T) {
	repo := newFakeRepo()
	r, tb := seedRestaurantWithTable(repo, 4)

	res := repo.addReservation(models.Reservation{
		RestaurantID:    r.ID,
		TableID:         tb.ID,
		StartTime:       time.Date(2026, time.September, 10, 12, 0, 0, 0, time.UTC),
		DurationMinutes: 90,
		Status:          string(domain.StatusConfirmed),
	})

	uc := NewCancelReservation(repo, newDispatcher(), nil)

	cancelled, err := uc.Execute(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), cancelled.Status)
	require.NotNil(t, cancelled.CancelledAt)

	// still present, never deleted
	kept, err := repo.GetReservationByID(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), kept.Status)
}

func TestCancelFreesTheInterval(t *testing.T) {
	repo := newFakeRepo()
	r, tb := seedRestaurantWithTable(repo, 4)

	createUC := NewCreateReservation(repo, newDispatcher(), nil)
	cancelUC := NewCancelReservation(repo, newDispatcher(), nil)

	first, err := createUC.Execute(context.Background(), validInput(r, tb))
	require.NoError(t, err)

	_, err = createUC.Execute(context.Background(), validInput(r, tb))
	require.True(t, httperr.IsBusiness(err, "time_conflict"))

	_, err = cancelUC.Execute(context.Background(), first.ID)
	require.NoError(t, err)

	// an identical interval now goes through
	_, err = createUC.Execute(context.Background(), validInput(r, tb))
	assert.NoError(t, err)
}

func TestCancelIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	r, tb := seedRestaurantWithTable(repo, 4)

	res := repo.addReservation(models.Reservation{
		RestaurantID:    r.ID,
		TableID:         tb.ID,
		StartTime:       time.Date(2026, time.September, 10, 12, 0, 0, 0, time.UTC),
		DurationMinutes: 90,
		Status:          string(domain.StatusCompleted),
	})

	uc := NewCancelReservation(repo, newDispatcher(), nil)

	// no state guard: completed or already cancelled reservations cancel too
	first, err := uc.Execute(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), first.Status)

	again, err := uc.Execute(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), again.Status)
}
