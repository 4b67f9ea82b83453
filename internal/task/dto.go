package task

import (
	"github.com/google/uuid"

	util "github.com/saulo-duarte/chronos-workspace/internal/utils"
)

type CreateTaskDTO struct {
	Title          string              `json:"title" validate:"required,max=200"`
	Description    string              `json:"description"`
	Priority       TaskPriority        `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	DueDate        *util.LocalDateTime `json:"due_date"`
	EstimatedHours float64             `json:"estimated_hours" validate:"gte=0,lte=10000"`
	ProjectID      *uuid.UUID          `json:"project_id"`
}

type UpdateTaskDTO struct {
	Title          *string             `json:"title" validate:"omitempty,min=1,max=200"`
	Description    *string             `json:"description"`
	Priority       *TaskPriority       `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	DueDate        *util.LocalDateTime `json:"due_date"`
	EstimatedHours *float64            `json:"estimated_hours" validate:"omitempty,gte=0,lte=10000"`
}

type UpdateStatusDTO struct {
	Status TaskStatus `json:"status" validate:"required,oneof=TODO IN_PROGRESS IN_REVIEW BLOCKED DONE"`
}

type LogHoursDTO struct {
	Hours float64 `json:"hours" validate:"gt=0,lte=24"`
}

type TaskStats struct {
	Total          int `json:"total"`
	Todo           int `json:"todo"`
	InProgress     int `json:"in_progress"`
	InReview       int `json:"in_review"`
	Blocked        int `json:"blocked"`
	Done           int `json:"done"`
	Overdue        int `json:"overdue"`
	CompletionRate int `json:"completion_rate"`
}

// CompletionCounts feeds performance metrics.
type CompletionCounts struct {
	Total     int64
	Done      int64
	OnTime    int64
	WithDue   int64
	HoursDone float64
}
