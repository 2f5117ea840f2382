package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"notely/internal/entity"
	"notely/internal/repository"
	"notely/internal/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const dummyPasswordHash = "$2a$10$CwTycUXWue0Thq9StjUM0uJ8yQbWc1x9uxw2sQ2sXUNx5x9xJ9F2S"

type AuthService struct {
	users        repository.UserRepository
	securityLogs repository.SecurityLogRepository
	ledger       repository.RevocationLedger

	mailer Mailer
	hasher PasswordHasher
	tokens TokenIssuer
	clock  Clock
	config AuthConfig
}

func NewAuthService(
	users repository.UserRepository,
	securityLogs repository.SecurityLogRepository,
	ledger repository.RevocationLedger,
	mailer Mailer,
	hasher PasswordHasher,
	tokens TokenIssuer,
	clock Clock,
	config AuthConfig,
) *AuthService {
	return &AuthService{
		users:        users,
		securityLogs: securityLogs,
		ledger:       ledger,
		mailer:       mailer,
		hasher:       hasher,
		tokens:       tokens,
		clock:        clock,
		config:       config,
	}
}

// Signup creates an account with a hashed password, mails a verification
// code and opens a session. An account that only exists because an OTP was
// issued for its email (no password yet) is claimed rather than rejected.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*AuthResult, error) {
	if strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Password) == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user != nil && user.PasswordHash != nil {
		return nil, ErrEmailTaken
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	if user == nil {
		user = &entity.User{
			Email:        input.Email,
			PasswordHash: &hash,
			Name:         optionalString(input.Name),
			Phone:        optionalString(input.Phone),
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, err
		}
	} else {
		if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
			return nil, err
		}
		user.PasswordHash = &hash
	}

	if err := s.issueAndMailOTP(ctx, user.Email, entity.OTPPurposeLogin); err != nil {
		return nil, err
	}

	return s.openSession(user)
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	if strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Password) == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		_, _ = s.hasher.Verify(dummyPasswordHash, input.Password)
		return nil, ErrUserNotFound
	}
	if user.PasswordHash == nil {
		_, _ = s.hasher.Verify(dummyPasswordHash, input.Password)
		_ = s.logSecurity(ctx, &user.ID, input.IPAddress, entity.LoginFailed, map[string]any{"reason": "no_password"})
		return nil, ErrInvalidCredentials
	}

	ok, err := s.hasher.Verify(*user.PasswordHash, input.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		_ = s.logSecurity(ctx, &user.ID, input.IPAddress, entity.LoginFailed, map[string]any{"reason": "mismatch"})
		return nil, ErrInvalidCredentials
	}

	result, err := s.openSession(user)
	if err != nil {
		return nil, err
	}
	_ = s.logSecurity(ctx, &user.ID, input.IPAddress, entity.LoginSuccess, nil)
	return result, nil
}

// SendOTP issues a fresh code into the purpose slot and mails it. The
// account is upserted by email, so the response never reveals whether the
// address was already registered.
func (s *AuthService) SendOTP(ctx context.Context, email string, purpose entity.OTPPurpose) error {
	if strings.TrimSpace(email) == "" {
		return ErrInvalidInput
	}
	return s.issueAndMailOTP(ctx, email, purpose)
}

// VerifyOTP consumes a pending code. Consumption is a single atomic
// check-and-clear, so a code spends at most once. For the login purpose a
// successful consume marks the account verified and opens a session.
func (s *AuthService) VerifyOTP(ctx context.Context, input VerifyOTPInput) (*AuthResult, error) {
	if strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Code) == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = s.logSecurity(ctx, nil, input.IPAddress, entity.OTPRejected, map[string]any{"reason": "no_code_pending"})
		return nil, ErrInvalidOTP
	}

	consumed, err := s.users.ConsumeOTP(ctx, input.Email, input.Purpose, input.Code, s.now())
	if err != nil {
		return nil, err
	}
	if !consumed {
		// The caller only learns "invalid or expired"; the reason stays
		// in the audit log.
		_ = s.logSecurity(ctx, &user.ID, input.IPAddress, entity.OTPRejected, map[string]any{
			"reason": s.rejectReason(user, input.Purpose, input.Code),
		})
		return nil, ErrInvalidOTP
	}

	if input.Purpose != entity.OTPPurposeLogin {
		return &AuthResult{User: user}, nil
	}

	if user.EmailVerifiedAt == nil {
		if err := s.users.MarkVerified(ctx, user.ID); err != nil {
			return nil, err
		}
		now := s.now()
		user.EmailVerifiedAt = &now
	}

	result, err := s.openSession(user)
	if err != nil {
		return nil, err
	}
	_ = s.logSecurity(ctx, &user.ID, input.IPAddress, entity.LoginSuccess, map[string]any{"method": "otp"})
	return result, nil
}

// ResetPassword replaces the password hash after consuming a pending
// reset-purpose code.
func (s *AuthService) ResetPassword(ctx context.Context, email string, code string, newPassword string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(code) == "" || strings.TrimSpace(newPassword) == "" {
		return ErrInvalidInput
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	consumed, err := s.users.ConsumeOTP(ctx, email, entity.OTPPurposeReset, code, s.now())
	if err != nil {
		return err
	}
	if !consumed {
		_ = s.logSecurity(ctx, &user.ID, nil, entity.OTPRejected, map[string]any{
			"reason": s.rejectReason(user, entity.OTPPurposeReset, code),
		})
		return ErrInvalidOTP
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}

	_ = s.logSecurity(ctx, &user.ID, nil, entity.PasswordReset, nil)
	return nil
}

// Logout records the verified bearer token on the revocation ledger for
// the full token lifetime; verify alone would still accept it, the guard
// consults the ledger.
func (s *AuthService) Logout(ctx context.Context, token string, userID *uuid.UUID, ipAddress *string) error {
	if err := s.ledger.Revoke(ctx, token, s.tokenTTL()); err != nil {
		return err
	}
	_ = s.logSecurity(ctx, userID, ipAddress, entity.Logout, nil)
	return nil
}

func (s *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *AuthService) issueAndMailOTP(ctx context.Context, email string, purpose entity.OTPPurpose) error {
	code, err := utils.GenerateOTP(6)
	if err != nil {
		return err
	}
	expiresAt := s.now().Add(s.otpTTL())
	if err := s.users.SaveOTP(ctx, email, purpose, code, expiresAt); err != nil {
		return err
	}

	subject := "Your OTP Code"
	if purpose == entity.OTPPurposeReset {
		subject = "Your Password Reset OTP"
	}
	html := fmt.Sprintf("<p>Your OTP is <strong>%s</strong>. It is valid for %d minutes.</p>",
		code, int(s.otpTTL().Minutes()))
	if err := s.mailer.Send(ctx, []string{email}, subject, html); err != nil {
		return err
	}

	_ = s.logSecurity(ctx, nil, nil, entity.OTPSent, map[string]any{"purpose": string(purpose)})
	return nil
}

func (s *AuthService) openSession(user *entity.User) (*AuthResult, error) {
	token, expiresIn, err := s.tokens.IssueToken(user.ID.String(), user.Email)
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		Token:     token,
		ExpiresIn: int64(expiresIn.Seconds()),
		User:      user,
	}, nil
}

// rejectReason classifies a failed consume from the state read just before
// it: no code pending, wrong code, or expired.
func (s *AuthService) rejectReason(user *entity.User, purpose entity.OTPPurpose, code string) string {
	storedCode, storedExpiry := user.OTP, user.OTPExpiresAt
	if purpose == entity.OTPPurposeReset {
		storedCode, storedExpiry = user.ResetOTP, user.ResetOTPExpiresAt
	}
	switch {
	case storedCode == nil:
		return "no_code_pending"
	case *storedCode != code:
		return "mismatch"
	case storedExpiry == nil || s.now().After(*storedExpiry):
		return "expired"
	default:
		return "already_consumed"
	}
}

func (s *AuthService) logSecurity(
	ctx context.Context,
	userID *uuid.UUID,
	ipAddress *string,
	action entity.SecurityAction,
	metadata map[string]any,
) error {
	if s.securityLogs == nil {
		return nil
	}
	var payload datatypes.JSON
	if metadata != nil {
		bytes, err := json.Marshal(metadata)
		if err != nil {
			return err
		}
		payload = datatypes.JSON(bytes)
	}

	log := &entity.SecurityLog{
		UserID:    userID,
		IPAddress: ipAddress,
		Action:    action,
		Metadata:  payload,
	}
	return s.securityLogs.Log(ctx, log)
}

func (s *AuthService) now() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock.Now()
}

func (s *AuthService) otpTTL() time.Duration {
	if s.config.OTPTTL > 0 {
		return s.config.OTPTTL
	}
	return 10 * time.Minute
}

func (s *AuthService) tokenTTL() time.Duration {
	if s.config.TokenTTL > 0 {
		return s.config.TokenTTL
	}
	return time.Hour
}

func optionalString(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}
