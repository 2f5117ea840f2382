package service

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidOTP         = errors.New("invalid or expired otp")
	ErrNoteNotFound       = errors.New("note not found")
	ErrNotNoteOwner       = errors.New("note belongs to another user")
)
