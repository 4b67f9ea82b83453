package goal

type GoalStatus string

const (
	StatusActive     GoalStatus = "active"
	StatusInProgress GoalStatus = "in-progress"
	StatusCompleted  GoalStatus = "completed"
)

var AllStatuses = []GoalStatus{
	StatusActive,
	StatusInProgress,
	StatusCompleted,
}

func (s GoalStatus) IsValid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// DeriveStatus applies a progress report to the current status. Progress is
// clamped to [0,100]; reaching 100 completes the goal and any positive
// progress moves an active goal to in-progress. A goal is never moved back
// to active.
func DeriveStatus(current GoalStatus, progress int) (int, GoalStatus) {
	switch {
	case progress < 0:
		progress = 0
	case progress > 100:
		progress = 100
	}

	switch {
	case progress >= 100:
		return progress, StatusCompleted
	case progress > 0 && current == StatusActive:
		return progress, StatusInProgress
	default:
		return progress, current
	}
}
