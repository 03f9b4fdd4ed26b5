package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Imrannnnn/TallieRestaurantApp/internal/models"
)

func TestWithinOperatingHours(t *testing.T) {
	r := &models.Restaurant{OpeningTime: "10:00", ClosingTime: "22:00"}

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"well inside", at(12, 0), at(13, 30), true},
		{"starts at opening", at(10, 0), at(11, 0), true},
		{"ends at closing", at(20, 30), at(22, 0), true},
		{"full window", at(10, 0), at(22, 0), true},
		{"starts before opening", at(9, 0), at(10, 30), false},
		{"ends after closing", at(21, 0), at(22, 30), false},
		{"entirely before opening", at(7, 0), at(8, 0), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, WithinOperatingHours(r, tc.start, tc.end))
		})
	}
}

func TestWithinOperatingHoursInvertedWindow(t *testing.T) {
	// An inverted opening/closing pair is not rejected at creation; the
	// lexicographic comparison just never passes for any daytime interval.
	r := &models.Restaurant{OpeningTime: "22:00", ClosingTime: "10:00"}

	assert.False(t, WithinOperatingHours(r, at(12, 0), at(13, 0)))
	assert.False(t, WithinOperatingHours(r, at(23, 0), at(23, 30)))
	assert.False(t, WithinOperatingHours(r, at(8, 0), at(9, 0)))
}

func TestWithinOperatingHoursUsesWallClockOnly(t *testing.T) {
	r := &models.Restaurant{OpeningTime: "10:00", ClosingTime: "22:00"}

	// The date component is dropped; only time-of-day matters.
	other := time.Date(2030, time.January, 1, 12, 0, 0, 0, time.UTC)
	assert.True(t, WithinOperatingHours(r, other, other.Add(90*time.Minute)))
}
