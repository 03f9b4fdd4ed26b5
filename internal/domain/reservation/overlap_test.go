package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, time.September, 10, hour, minute, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name   string
		aStart time.Time
		aEnd   time.Time
		bStart time.Time
		bEnd   time.Time
		want   bool
	}{
		{"identical intervals", at(12, 0), at(13, 30), at(12, 0), at(13, 30), true},
		{"partial overlap", at(12, 0), at(13, 30), at(12, 15), at(13, 45), true},
		{"contained interval", at(12, 0), at(14, 0), at(12, 30), at(13, 0), true},
		{"same start different end", at(12, 0), at(13, 0), at(12, 0), at(14, 0), true},
		{"back to back, earlier first", at(12, 0), at(13, 0), at(13, 0), at(14, 0), false},
		{"back to back, later first", at(13, 0), at(14, 0), at(12, 0), at(13, 0), false},
		{"disjoint", at(10, 0), at(11, 0), at(15, 0), at(16, 0), false},
		{"one minute overlap", at(12, 0), at(13, 1), at(13, 0), at(14, 0), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
			// overlap is symmetric
			assert.Equal(t, tc.want, Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd))
		})
	}
}
