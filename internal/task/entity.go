package task

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Task struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Title          string       `gorm:"size:200;not null" json:"title"`
	Description    string       `gorm:"type:text" json:"description,omitempty"`
	Status         TaskStatus   `gorm:"size:16;not null;default:TODO;index" json:"status"`
	Priority       TaskPriority `gorm:"size:16;not null;default:MEDIUM" json:"priority"`
	DueDate        *time.Time   `gorm:"index" json:"due_date,omitempty"`
	EstimatedHours float64      `gorm:"not null;default:0" json:"estimated_hours"`
	ActualHours    float64      `gorm:"not null;default:0" json:"actual_hours"`
	ProjectID      *uuid.UUID   `gorm:"type:uuid;index" json:"project_id,omitempty"`
	AssigneeID     uuid.UUID    `gorm:"type:uuid;not null;index" json:"assignee_id"`
	CompletedAt    *time.Time   `json:"completed_at,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
