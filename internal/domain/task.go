package domain

import "time"

// TaskStatus is the task workflow state. All transitions between the three
// values are allowed.
type TaskStatus string

const (
	StatusToDo       TaskStatus = "TO_DO"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusDone       TaskStatus = "DONE"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// TaskPriority is an informational ranking, not a scheduling constraint.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// FormatTime renders timestamps for the wire. Both adapters use it so the
// textual form is identical across transports.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
