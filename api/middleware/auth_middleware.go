package middleware

import (
	"errors"
	"net/http"
	"strings"

	"notely/internal/repository"
	"notely/internal/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type AuthMiddleware struct {
	JWT    *utils.TokenManager
	Ledger repository.RevocationLedger
}

// RequireAuth admits a request only when the bearer token carries a valid
// signature, has not expired and is absent from the revocation ledger. The
// expired case gets its own message so clients know to re-authenticate;
// every other failure looks the same from outside.
func (m AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.JWT == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}
		token := extractBearerToken(c.Request())
		if token == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized: no token provided")
		}

		if m.Ledger != nil {
			revoked, err := m.Ledger.IsRevoked(c.Request().Context(), token)
			if err != nil {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "authorization unavailable")
			}
			if revoked {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}
		}

		claims, err := m.JWT.ParseToken(token)
		if err != nil {
			if errors.Is(err, utils.ErrTokenExpired) {
				return echo.NewHTTPError(http.StatusUnauthorized, "session expired, please log in again")
			}
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}

		SetAuthContext(c, userID, claims.Email, token)
		return next(c)
	}
}

func extractBearerToken(r *http.Request) string {
	authorization := r.Header.Get("Authorization")
	if authorization == "" {
		return ""
	}
	parts := strings.SplitN(authorization, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
