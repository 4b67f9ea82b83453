package pto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PTOStatus string

const (
	StatusPending  PTOStatus = "PENDING"
	StatusApproved PTOStatus = "APPROVED"
	StatusRejected PTOStatus = "REJECTED"
)

type PTOType string

const (
	TypeVacation PTOType = "VACATION"
	TypeSick     PTOType = "SICK"
	TypePersonal PTOType = "PERSONAL"
)

// PTORequest is written by the leave workflow; this service only reads it.
type PTORequest struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	StartDate time.Time `gorm:"not null;index" json:"start_date"`
	EndDate   time.Time `gorm:"not null;index" json:"end_date"`
	Status    PTOStatus `gorm:"size:16;not null;index" json:"status"`
	Type      PTOType   `gorm:"size:16;not null" json:"type"`
	Reason    string    `gorm:"type:text" json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *PTORequest) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
