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

var testDate = time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)

func availabilityInput(r models.Restaurant, partySize int) domain.AvailabilityInput {
	return domain.AvailabilityInput{
		RestaurantID: r.ID,
		Date:         testDate,
		PartySize:    partySize,
	}
}

func TestAvailabilityRestaurantNotFound(t *testing.T) {
	uc := NewGetAvailability(newFakeRepo(), nil)

	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		RestaurantID: 42,
		Date:         testDate,
		PartySize:    2,
	})
	assert.True(t, httperr.IsBusiness(err, "restaurant_not_found"))
}

func TestAvailabilityEmptyWhenNoTableBigEnough(t *testing.T) {
	repo := newFakeRepo()
	r, _ := seedRestaurantWithTable(repo, 4)

	uc := NewGetAvailability(repo, nil)

	slots, err := uc.Execute(context.Background(), availabilityInput(r, 10))
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestAvailabilityFreeDayYieldsEverySlot(t *testing.T) {
	repo := newFakeRepo()
	r, tb := seedRestaurantWithTable(repo, 4) // open 10:00, close 22:00

	uc := NewGetAvailability(repo, nil)

	slots, err := uc.Execute(context.Background(), availabilityInput(r, 2))
	require.NoError(t, err)

	// 12 whole hours, 4 quarter-hour boundaries each
	require.Len(t, slots, 12*4)

	assert.Equal(t, "2026-09-10T10:00:00Z", slots[0].Time)
	assert.Equal(t, "2026-09-10T21:45:00Z", slots[len(slots)-1].Time)
	for _, slot := range slots {
		assert.Equal(t, tb.ID, slot.TableID)
		assert.Equal(t, tb.TableNumber, slot.TableNumber)
	}
}

func TestAvailabilityPrefersSmallestAdequateTable(t *testing.T) {
	repo := newFakeRepo()
	r := repo.addRestaurant(models.Restaurant{
		Name:        "Tallie",
		OpeningTime: "10:00",
		ClosingTime: "22:00",
	})
	big := repo.addTable(models.Table{RestaurantID: r.ID, TableNumber: 1, Capacity: 8})
	small := repo.addTable(models.Table{RestaurantID: r.ID, TableNumber: 2, Capacity: 2})

	uc := NewGetAvailability(repo, nil)

	slots, err := uc.Execute(context.Background(), availabilityInput(r, 2))
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	for _, slot := range slots {
		assert.Equal(t, small.ID, slot.TableID)
	}

	// book the small table solid for lunch; those slots fall over to the big one
	repo.addReservation(models.Reservation{
		RestaurantID:    r.ID,
		TableID:         small.ID,
		StartTime:       time.Date(2026, time.September, 10, 12, 0, 0, 0, time.UTC),
		DurationMinutes: 90,
		Status:          string(domain.StatusConfirmed),
	})

	slots, err = uc.Execute(context.Background(), availabilityInput(r, 2))
	require.NoError(t, err)

	byTime := map[string]domain.AvailableSlot{}
	for _, slot := range slots {
		byTime[slot.Time] = slot
	}

	assert.Equal(t, big.ID, byTime["2026-09-10T12:00:00Z"].TableID)
	assert.Equal(t, big.ID, byTime["2026-09-10T13:15:00Z"].TableID)
	// the 90-minute probe reaches back before the booking as well
	assert.Equal(t, big.ID, byTime["2026-09-10T11:00:00Z"].TableID)
	assert.Equal(t, small.ID, byTime["2026-09-10T10:15:00Z"].TableID)
	assert.Equal(t, small.ID, byTime["2026-09-10T13:30:00Z"].TableID)
}

func TestAvailabilitySlotGoneWhenAllTablesBusy(t *testing.T) {
	repo := newFakeRepo()
	r, tb := seedRestaurantWithTable(repo, 4)

	repo.addReservation(models.Reservation{
		RestaurantID:    r.ID,
		TableID:         tb.ID,
		StartTime:       time.Date(2026, time.September, 10, 12, 0, 0, 0, time.UTC),
		DurationMinutes: 90,
		Status:          string(domain.StatusConfirmed),
	})

	uc := NewGetAvailability(repo, nil)

	slots, err := uc.Execute(context.Background(), availabilityInput(r, 2))
	require.NoError(t, err)

	times := map[string]bool{}
	for _, slot := range slots {
		times[slot.Time] = true
	}

	assert.False(t, times["2026-09-10T12:00:00Z"])
	assert.False(t, times["2026-09-10T13:15:00Z"])
	// 90-minute probes that would run into the booking are gone too
	assert.False(t, times["2026-09-10T10:45:00Z"])
	assert.True(t, times["2026-09-10T10:30:00Z"])
	assert.True(t, times["2026-09-10T13:30:00Z"])
}

func TestAvailabilityClosingMinuteTruncatesLastHour(t *testing.T) {
	repo := newFakeRepo()
	r := repo.addRestaurant(models.Restaurant{
		Name:        "Tallie",
		OpeningTime: "10:00",
		ClosingTime: "22:30",
	})
	repo.addTable(models.Table{RestaurantID: r.ID, TableNumber: 1, Capacity: 4})

	uc := NewGetAvailability(repo, nil)

	slots, err := uc.Execute(context.Background(), availabilityInput(r, 2))
	require.NoError(t, err)

	// the 22:00 and 22:15 slots are dropped with the whole 22:xx hour
	require.NotEmpty(t, slots)
	assert.Equal(t, "2026-09-10T21:45:00Z", slots[len(slots)-1].Time)
}
