package goal

import (
	util "github.com/saulo-duarte/chronos-workspace/internal/utils"
)

type CreateGoalDTO struct {
	Title       string              `json:"title" validate:"required,max=200"`
	Description string              `json:"description"`
	TargetDate  *util.LocalDateTime `json:"target_date"`
	Progress    int                 `json:"progress"`
}

type UpdateGoalDTO struct {
	Title       *string             `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string             `json:"description"`
	TargetDate  *util.LocalDateTime `json:"target_date"`
}

// UpdateProgressDTO accepts any integer; out of range values are clamped.
type UpdateProgressDTO struct {
	Progress *int `json:"progress" validate:"required"`
}

type GoalStats struct {
	Total           int `json:"total"`
	Active          int `json:"active"`
	InProgress      int `json:"in_progress"`
	Completed       int `json:"completed"`
	AverageProgress int `json:"average_progress"`
}
