package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"notely/api/middleware"
	"notely/internal/dto"
	"notely/internal/entity"
	"notely/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	Service  *service.AuthService
	Validate *validator.Validate
}

func NewAuthHandler(svc *service.AuthService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{Service: svc, Validate: validate}
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var req dto.SignupRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	input := service.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
	}
	result, err := h.Service.Signup(c.Request().Context(), input)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.AuthResponse{
		Message:   "signup successful",
		Token:     result.Token,
		ExpiresIn: result.ExpiresIn,
		User:      dto.UserResponseFromEntity(result.User),
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	input := service.LoginInput{
		Email:     req.Email,
		Password:  req.Password,
		IPAddress: stringPtr(c.RealIP()),
	}
	result, err := h.Service.Login(c.Request().Context(), input)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.AuthResponse{
		Message:   "login successful",
		Token:     result.Token,
		ExpiresIn: result.ExpiresIn,
		User:      dto.UserResponseFromEntity(result.User),
	})
}

func (h *AuthHandler) SendOTP(c echo.Context) error {
	var req dto.SendOTPRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Service.SendOTP(c.Request().Context(), req.Email, entity.OTPPurpose(req.Purpose)); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "otp sent successfully"})
}

func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req dto.VerifyOTPRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	input := service.VerifyOTPInput{
		Email:     req.Email,
		Purpose:   entity.OTPPurposeLogin,
		Code:      req.OTP,
		IPAddress: stringPtr(c.RealIP()),
	}
	result, err := h.Service.VerifyOTP(c.Request().Context(), input)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.AuthResponse{
		Message:   "otp verified successfully",
		Token:     result.Token,
		ExpiresIn: result.ExpiresIn,
		User:      dto.UserResponseFromEntity(result.User),
	})
}

func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req dto.ResetPasswordRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Service.ResetPassword(c.Request().Context(), req.Email, req.OTP, req.NewPassword); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "password reset successful"})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	token, ok := middleware.RawTokenFromContext(c)
	if !ok || token == "" {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized: no token provided"))
	}
	userID, _ := middleware.UserIDFromContext(c)
	if err := h.Service.Logout(c.Request().Context(), token, &userID, stringPtr(c.RealIP())); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "logged out successfully"})
}

func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	user, err := h.Service.GetCurrentUser(c.Request().Context(), userID)
	if err != nil {
		return writeServiceError(c, err)
	}
	if user == nil {
		return writeError(c, http.StatusNotFound, service.ErrUserNotFound)
	}
	return c.JSON(http.StatusOK, dto.UserResponseFromEntity(user))
}

func (h *AuthHandler) validate(payload any) error {
	if h.Validate == nil {
		return nil
	}
	return h.Validate.Struct(payload)
}

func decodeJSON(c echo.Context, target any) error {
	decoder := json.NewDecoder(c.Request().Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

func writeError(c echo.Context, status int, err error) error {
	return c.JSON(status, map[string]string{"message": err.Error()})
}

// writeServiceError maps sentinel errors onto statuses; anything unknown
// is a 500 with a generic body so storage detail never reaches clients.
func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return writeError(c, http.StatusBadRequest, err)
	case errors.Is(err, service.ErrInvalidOTP):
		return writeError(c, http.StatusBadRequest, err)
	case errors.Is(err, service.ErrInvalidCredentials):
		return writeError(c, http.StatusUnauthorized, err)
	case errors.Is(err, service.ErrNotNoteOwner):
		return writeError(c, http.StatusForbidden, err)
	case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrNoteNotFound):
		return writeError(c, http.StatusNotFound, err)
	case errors.Is(err, service.ErrEmailTaken):
		return writeError(c, http.StatusConflict, err)
	default:
		c.Logger().Error(err)
		return writeError(c, http.StatusInternalServerError, errors.New("internal server error"))
	}
}

func stringPtr(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}
