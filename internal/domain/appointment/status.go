package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusDeleted   Status = "deleted"
)

// Status is an open string in stored documents; the constants above cover
// the values the frontend produces.

func InitialStatus() Status {
	return StatusPending
}

// Blocks reports whether an appointment in this status occupies its time
// slot for conflict purposes. Only cancellation frees a slot.
func Blocks(s Status) bool {
	return s != StatusCancelled
}
