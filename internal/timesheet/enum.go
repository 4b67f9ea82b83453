package timesheet

type TimesheetStatus string

const (
	StatusDraft     TimesheetStatus = "DRAFT"
	StatusSubmitted TimesheetStatus = "SUBMITTED"
	StatusApproved  TimesheetStatus = "APPROVED"
)

// Editable reports whether entries may still change.
func (s TimesheetStatus) Editable() bool {
	return s != StatusApproved
}
