package timesheet

import (
	"github.com/google/uuid"

	util "github.com/saulo-duarte/chronos-workspace/internal/utils"
)

type AddEntryDTO struct {
	Date        *util.LocalDateTime `json:"date" validate:"required"`
	Hours       float64             `json:"hours" validate:"gt=0,lte=24"`
	Billable    bool                `json:"billable"`
	ProjectID   *uuid.UUID          `json:"project_id"`
	Description string              `json:"description" validate:"max=2000"`
}

// UpdateEntryDTO may move an entry to another day of the same week only.
type UpdateEntryDTO struct {
	Date        *util.LocalDateTime `json:"date"`
	Hours       *float64            `json:"hours" validate:"omitempty,gt=0,lte=24"`
	Billable    *bool               `json:"billable"`
	ProjectID   *uuid.UUID          `json:"project_id"`
	Description *string             `json:"description" validate:"omitempty,max=2000"`
}

type TimesheetStats struct {
	WeekHours          float64 `json:"week_hours"`
	MonthHours         float64 `json:"month_hours"`
	MonthBillableHours float64 `json:"month_billable_hours"`
	BillablePercent    int     `json:"billable_percent"`
	Draft              int     `json:"draft"`
	Submitted          int     `json:"submitted"`
	Approved           int     `json:"approved"`
}
