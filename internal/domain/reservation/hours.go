package reservation

import (
	"time"

	"github.com/Imrannnnn/TallieRestaurantApp/internal/models"
)

// WithinOperatingHours reports whether [start, end) falls inside the
// restaurant's daily service window. Both endpoints are reduced to
// zero-padded "HH:MM" wall-clock strings and compared lexicographically
// against opening_time and closing_time, which for this format is
// equivalent to numeric comparison.
//
// Same-day check only: a reservation whose end crosses midnight will not
// pass. An opening_time >= closing_time misconfiguration is not detected
// here; it simply makes the check unsatisfiable (or trivially satisfiable,
// depending on the values).
func WithinOperatingHours(r *models.Restaurant, start, end time.Time) bool {
	startHM := start.Format("15:04")
	endHM := end.Format("15:04")
	return startHM >= r.OpeningTime && endHM <= r.ClosingTime
}
