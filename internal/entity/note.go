package entity

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
	User   User      `gorm:"constraint:OnDelete:CASCADE"`

	Title    *string `gorm:"type:varchar(255)"`
	Content  *string `gorm:"type:text"`
	Category *string `gorm:"type:varchar(100)"`

	Date time.Time `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
