package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SecurityAction string

const (
	LoginSuccess  SecurityAction = "login_success"
	LoginFailed   SecurityAction = "login_failed"
	OTPSent       SecurityAction = "otp_sent"
	OTPRejected   SecurityAction = "otp_rejected"
	Logout        SecurityAction = "logout"
	PasswordReset SecurityAction = "password_reset"
)

type SecurityLog struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	IPAddress *string    `gorm:"type:varchar(64)"`

	Action   SecurityAction `gorm:"type:varchar(32);not null"`
	Metadata datatypes.JSON

	CreatedAt time.Time
}
