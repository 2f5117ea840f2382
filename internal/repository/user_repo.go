package repository

import (
	"context"
	"errors"
	"time"

	"notely/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
	MarkVerified(ctx context.Context, userID uuid.UUID) error

	// SaveOTP writes a code into the purpose slot for the given email,
	// creating a minimal password-less user first if none exists. A
	// pending code in the same slot is overwritten.
	SaveOTP(ctx context.Context, email string, purpose entity.OTPPurpose, code string, expiresAt time.Time) error

	// ConsumeOTP atomically clears the purpose slot if the stored code
	// matches and has not expired. Returns false when there is no match,
	// including when the code was already consumed.
	ConsumeOTP(ctx context.Context, email string, purpose entity.OTPPurpose, code string, now time.Time) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (r *userRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	return r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", userID).
		Update("password_hash", passwordHash).
		Error
}

func (r *userRepository) MarkVerified(ctx context.Context, userID uuid.UUID) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", userID).
		Update("email_verified_at", &now).
		Error
}

func (r *userRepository) SaveOTP(
	ctx context.Context,
	email string,
	purpose entity.OTPPurpose,
	code string,
	expiresAt time.Time,
) error {
	user, err := r.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		user = &entity.User{Email: email}
		if err := r.Create(ctx, user); err != nil {
			return err
		}
	}

	codeColumn, expiryColumn := otpColumns(purpose)
	return r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("email = ?", email).
		Updates(map[string]any{
			codeColumn:   code,
			expiryColumn: expiresAt,
		}).
		Error
}

func (r *userRepository) ConsumeOTP(
	ctx context.Context,
	email string,
	purpose entity.OTPPurpose,
	code string,
	now time.Time,
) (bool, error) {
	codeColumn, expiryColumn := otpColumns(purpose)

	// Single guarded UPDATE so a code can only be spent once even under
	// concurrent consumption.
	result := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("email = ? AND "+codeColumn+" = ? AND "+expiryColumn+" >= ?", email, code, now).
		Updates(map[string]any{
			codeColumn:   nil,
			expiryColumn: nil,
		})

	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func otpColumns(purpose entity.OTPPurpose) (string, string) {
	if purpose == entity.OTPPurposeReset {
		return "reset_otp", "reset_otp_expires_at"
	}
	return "otp", "otp_expires_at"
}
