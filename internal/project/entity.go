package project

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Project struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string        `gorm:"size:160;not null" json:"name"`
	Description string        `gorm:"type:text" json:"description,omitempty"`
	Status      ProjectStatus `gorm:"size:32;not null;default:PLANNED" json:"status"`
	UserID      uuid.UUID     `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type CreateProjectDTO struct {
	Name        string        `json:"name" validate:"required,max=160"`
	Description string        `json:"description"`
	Status      ProjectStatus `json:"status" validate:"omitempty,oneof=PLANNED ACTIVE ON_HOLD COMPLETED"`
}
