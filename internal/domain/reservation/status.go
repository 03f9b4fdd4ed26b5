package reservation

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// InitialStatus is the status every newly created reservation gets. Nothing
// in the creation path produces "pending"; the constant exists because
// persisted rows may still carry it and it blocks tables like "confirmed".
func InitialStatus() Status {
	return StatusConfirmed
}

// BlockingStatuses are the statuses that make a reservation count against
// table availability.
func BlockingStatuses() []string {
	return []string{string(StatusConfirmed), string(StatusPending)}
}

// Blocks reports whether a reservation in the given status occupies its table.
func Blocks(s Status) bool {
	return s == StatusConfirmed || s == StatusPending
}
