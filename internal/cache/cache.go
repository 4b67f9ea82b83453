// Package cache signals which rendered views became stale after a mutation.
package cache

import "context"

const (
	PathDashboard   = "/employee/dashboard"
	PathTasks       = "/employee/tasks"
	PathTimesheets  = "/employee/timesheets"
	PathGoals       = "/employee/goals"
	PathAppraisals  = "/employee/appraisals"
	PathCalendar    = "/employee/calendar"
	PathPerformance = "/employee/performance"
	PathProfile     = "/employee/profile"
)

// Invalidator marks view paths stale. It is fire-and-forget: implementations
// log their own failures and never report them to the caller.
type Invalidator interface {
	Invalidate(ctx context.Context, paths ...string)
}

// Multi fans one signal out to several invalidators.
type Multi []Invalidator

func (m Multi) Invalidate(ctx context.Context, paths ...string) {
	for _, inv := range m {
		inv.Invalidate(ctx, paths...)
	}
}
