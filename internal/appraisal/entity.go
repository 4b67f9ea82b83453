package appraisal

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppraisalCycle is managed by HR tooling; this service only reads it.
type AppraisalCycle struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string      `gorm:"size:120;not null" json:"name"`
	StartDate time.Time   `gorm:"not null" json:"start_date"`
	EndDate   time.Time   `gorm:"not null;index" json:"end_date"`
	Status    CycleStatus `gorm:"size:16;not null;index" json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (c *AppraisalCycle) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// AppraisalReview is one user's review within a cycle; at most one per
// (user_id, cycle_id).
type AppraisalReview struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_review_user_cycle,priority:1" json:"user_id"`
	CycleID         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_review_user_cycle,priority:2" json:"cycle_id"`
	Cycle           *AppraisalCycle `gorm:"foreignKey:CycleID" json:"cycle,omitempty"`
	SelfReview      string          `gorm:"type:text" json:"self_review"`
	Rating          *int            `json:"rating,omitempty"`
	FinalRating     *float64        `json:"final_rating,omitempty"`
	ManagerFeedback string          `gorm:"type:text" json:"manager_feedback,omitempty"`
	Status          ReviewStatus    `gorm:"size:16;not null;default:DRAFT;index" json:"status"`
	SubmittedAt     *time.Time      `json:"submitted_at,omitempty"`
	CompletedAt     *time.Time      `json:"completed_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (r *AppraisalReview) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
