package token

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/avoronin/ar_shop/internal/apperr"
)

const userIDKey = "userID"

// RequireLogin resolves the Authorization header to a user id and stores it
// in the echo context. Absent, malformed and invalid credentials all get the
// same generic 401.
func (s *Service) RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return apperr.Unauthenticated("missing authorization header")
		}

		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			return apperr.Unauthenticated("invalid authorization header")
		}

		userID, err := s.Parse(raw)
		if err != nil {
			return err
		}

		c.Set(userIDKey, userID)
		return next(c)
	}
}

// UserID reads the identity stored by RequireLogin.
func UserID(c echo.Context) (uint, error) {
	id, ok := c.Get(userIDKey).(uint)
	if !ok {
		return 0, apperr.Unauthenticated("missing user identity")
	}
	return id, nil
}
