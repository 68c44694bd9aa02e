package models

// WorkscheduleStatus represents the lifecycle state of a workschedule
type WorkscheduleStatus string

const (
	// WorkscheduleStatusPending is the state a workschedule is created in,
	// before its start date is reached
	WorkscheduleStatusPending WorkscheduleStatus = "Pending"
	// WorkscheduleStatusOpen means the schedule currently accepts time entries
	WorkscheduleStatusOpen WorkscheduleStatus = "Open"
	// WorkscheduleStatusClosed means the schedule's end date has passed
	WorkscheduleStatusClosed WorkscheduleStatus = "Closed"
)

// IsValid checks if the workschedule status is valid
func (s WorkscheduleStatus) IsValid() bool {
	switch s {
	case WorkscheduleStatusPending, WorkscheduleStatusOpen, WorkscheduleStatusClosed:
		return true
	}
	return false
}
