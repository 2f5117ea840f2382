package dto

import (
	"time"

	"notely/internal/entity"
)

type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,alphanum,min=6,max=25"`
	Name     string `json:"name" validate:"omitempty,max=255"`
	Phone    string `json:"phone" validate:"omitempty,max=32"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SendOTPRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Purpose string `json:"purpose" validate:"required,oneof=login reset"`
}

// VerifyOTPRequest targets the login/verification slot only; reset codes
// are consumed by the reset-password operation.
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6,numeric"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	OTP         string `json:"otp" validate:"required,len=6,numeric"`
	NewPassword string `json:"new_password" validate:"required,alphanum,min=6,max=25"`
}

type AuthResponse struct {
	Message   string        `json:"message"`
	Token     string        `json:"token,omitempty"`
	ExpiresIn int64         `json:"expires_in,omitempty"`
	User      *UserResponse `json:"user,omitempty"`
}

type UserResponse struct {
	ID              string     `json:"id"`
	Email           string     `json:"email"`
	Name            *string    `json:"name,omitempty"`
	Phone           *string    `json:"phone,omitempty"`
	EmailVerifiedAt *time.Time `json:"email_verified_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func UserResponseFromEntity(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:              user.ID.String(),
		Email:           user.Email,
		Name:            user.Name,
		Phone:           user.Phone,
		EmailVerifiedAt: user.EmailVerifiedAt,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}
}
