package calendar

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventTask      EventType = "task"
	EventAppraisal EventType = "appraisal"
	EventPTO       EventType = "pto"
)

// rank orders events that fall on the same instant.
func (t EventType) rank() int {
	switch t {
	case EventTask:
		return 0
	case EventAppraisal:
		return 1
	case EventPTO:
		return 2
	default:
		return 3
	}
}

type CalendarEvent struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Date     time.Time `json:"date"`
	Type     EventType `json:"type"`
	SourceID uuid.UUID `json:"source_id"`
	AllDay   bool      `json:"all_day"`
	Status   string    `json:"status,omitempty"`
	Priority string    `json:"priority,omitempty"`
}
