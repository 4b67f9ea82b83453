package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string    `gorm:"size:120;not null" json:"name"`
	Email      string    `gorm:"size:255;index" json:"email"`
	Role       string    `gorm:"size:32;not null;default:employee" json:"role"`
	Department string    `gorm:"size:120" json:"department,omitempty"`
	JobTitle   string    `gorm:"size:120" json:"job_title,omitempty"`
	Phone      string    `gorm:"size:32" json:"phone,omitempty"`
	Timezone   string    `gorm:"size:64" json:"timezone,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
