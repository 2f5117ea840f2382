package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"notely/internal/entity"

	"golang.org/x/crypto/bcrypt"
)

type AuthConfig struct {
	TokenTTL time.Duration
	OTPTTL   time.Duration
}

// Mailer delivers a single HTML message. Implementations fail loud on
// transport errors; the auth service never retries.
type Mailer interface {
	Send(ctx context.Context, to []string, subject string, html string) error
}

// PasswordHasher performs one-way password hashing. Verify reports a
// mismatch as (false, nil); an error means the stored hash itself is
// malformed, which is a data problem rather than a bad credential.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash string, password string) (bool, error)
}

type TokenIssuer interface {
	IssueToken(userID string, email string) (string, time.Duration, error)
}

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

type BcryptPasswordHasher struct {
	Cost int
}

func (h BcryptPasswordHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func (h BcryptPasswordHasher) Verify(hash string, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("malformed password hash: %w", err)
	}
}

type SignupInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
}

type LoginInput struct {
	Email     string
	Password  string
	IPAddress *string
}

type VerifyOTPInput struct {
	Email     string
	Purpose   entity.OTPPurpose
	Code      string
	IPAddress *string
}

type AuthResult struct {
	Token     string
	ExpiresIn int64
	User      *entity.User
}
