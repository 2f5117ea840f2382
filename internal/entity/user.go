package entity

import (
	"time"

	"github.com/google/uuid"
)

// OTPPurpose selects which one-time-code slot on a user an operation
// targets. The login slot doubles as the email-verification code; the
// reset slot guards password resets. Codes in one slot never validate
// against the other.
type OTPPurpose string

const (
	OTPPurposeLogin OTPPurpose = "login"
	OTPPurposeReset OTPPurpose = "reset"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash *string   `gorm:"type:text"`
	Name         *string   `gorm:"type:varchar(255)"`
	Phone        *string   `gorm:"type:varchar(32)"`

	// At most one pending code per slot; issuing a new one overwrites
	// the previous value and expiry.
	OTP               *string    `gorm:"type:varchar(8)"`
	OTPExpiresAt      *time.Time `gorm:"column:otp_expires_at"`
	ResetOTP          *string    `gorm:"type:varchar(8);column:reset_otp"`
	ResetOTPExpiresAt *time.Time `gorm:"column:reset_otp_expires_at"`

	EmailVerifiedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	Notes []Note
}
