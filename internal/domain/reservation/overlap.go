package reservation

import "time"

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect: aStart < bEnd AND bStart < aEnd. An exact
// start match is an overlap for any positive duration.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
