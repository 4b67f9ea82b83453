package timesheet

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Timesheet covers one Monday-to-Sunday week of a user. There is at most one
// per (user_id, week_start).
type Timesheet struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_timesheet_user_week,priority:1" json:"user_id"`
	WeekStart   time.Time        `gorm:"not null;uniqueIndex:idx_timesheet_user_week,priority:2" json:"week_start"`
	WeekEnd     time.Time        `gorm:"not null" json:"week_end"`
	TotalHours  float64          `gorm:"not null;default:0" json:"total_hours"`
	Status      TimesheetStatus  `gorm:"size:16;not null;default:DRAFT;index" json:"status"`
	SubmittedAt *time.Time       `json:"submitted_at,omitempty"`
	ApprovedAt  *time.Time       `json:"approved_at,omitempty"`
	Entries     []TimesheetEntry `gorm:"foreignKey:TimesheetID;constraint:OnDelete:CASCADE" json:"entries"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func (t *Timesheet) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

type TimesheetEntry struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	TimesheetID uuid.UUID  `gorm:"type:uuid;not null;index" json:"timesheet_id"`
	Date        time.Time  `gorm:"not null;index" json:"date"`
	Hours       float64    `gorm:"not null" json:"hours"`
	Billable    bool       `gorm:"not null;default:false" json:"billable"`
	ProjectID   *uuid.UUID `gorm:"type:uuid;index" json:"project_id,omitempty"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (e *TimesheetEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
