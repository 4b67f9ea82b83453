package project

type ProjectStatus string

const (
	StatusPlanned   ProjectStatus = "PLANNED"
	StatusActive    ProjectStatus = "ACTIVE"
	StatusOnHold    ProjectStatus = "ON_HOLD"
	StatusCompleted ProjectStatus = "COMPLETED"
)

// Open reports whether work can still be booked against the project.
func (s ProjectStatus) Open() bool {
	return s == StatusPlanned || s == StatusActive
}
