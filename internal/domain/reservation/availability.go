package reservation

import "time"

// Availability search probes every quarter-hour boundary with a fixed
// synthetic duration, regardless of how long the eventual reservation will
// be. The probe length and the hour-granularity loop bound (a ":30" closing
// minute drops the last partial hour of slots) are inherited behavior.
const (
	ProbeDurationMinutes = 90
	SlotStepMinutes      = 15
)

type AvailabilityInput struct {
	RestaurantID uint
	Date         time.Time
	PartySize    int
}

type AvailableSlot struct {
	Time        string `json:"time"`
	TableID     uint   `json:"table_id"`
	TableNumber int    `json:"table_number"`
}
