package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/avoronin/ar_shop/internal/logging"
)

var (
	ErrValidation      = errors.New("validation error")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrUnauthenticated = errors.New("unauthenticated")
)

// Validation wraps ErrValidation with a caller-facing message.
func Validation(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrValidation)
}

func NotFound(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrNotFound)
}

func Conflict(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrConflict)
}

func Unauthenticated(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrUnauthenticated)
}

// Status maps a taxonomy error to its HTTP status. Anything outside the
// taxonomy is an internal fault.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Message strips the wrapped sentinel suffix, leaving the caller-facing text.
func Message(err error) string {
	msg := err.Error()
	for _, sentinel := range []error{ErrValidation, ErrNotFound, ErrConflict, ErrUnauthenticated} {
		if trimmed, ok := strings.CutSuffix(msg, ": "+sentinel.Error()); ok && trimmed != "" {
			return trimmed
		}
	}
	return msg
}

// HTTPErrorHandler renders every error as the shared envelope
// {"success": false, "message": ...}. Internal faults are logged and
// replaced with a generic message.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "Internal server error"

	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		status = he.Code
		message = fmt.Sprintf("%v", he.Message)
		if status == http.StatusNotFound && he.Message == "Not Found" {
			message = "Route not found"
		}
	case Status(err) != http.StatusInternalServerError:
		status = Status(err)
		message = Message(err)
	default:
		logging.FromContext(c.Request().Context()).Error("unhandled error", "error", err)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, echo.Map{
		"success": false,
		"message": message,
	})
}
