package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/saulo-duarte/chronos-workspace/internal/appraisal"
	"github.com/saulo-duarte/chronos-workspace/internal/goal"
	"github.com/saulo-duarte/chronos-workspace/internal/project"
	"github.com/saulo-duarte/chronos-workspace/internal/pto"
	"github.com/saulo-duarte/chronos-workspace/internal/task"
	"github.com/saulo-duarte/chronos-workspace/internal/timesheet"
	"github.com/saulo-duarte/chronos-workspace/internal/user"
)

// AllModels returns every persisted model, in dependency order.
func AllModels() []interface{} {
	return []interface{}{
		&user.User{},
		&project.Project{},
		&task.Task{},
		&goal.Goal{},
		&timesheet.Timesheet{},
		&timesheet.TimesheetEntry{},
		&appraisal.AppraisalCycle{},
		&appraisal.AppraisalReview{},
		&pto.PTORequest{},
	}
}

// AutoMigrate creates or updates all tables, including the unique
// (user, week) and (user, cycle) indexes that back lazy creation.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("db: auto-migrate: %w", err)
	}
	return nil
}
