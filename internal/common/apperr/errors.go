package apperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error taxonomy for the console. Controllers map these onto HTTP statuses
// with errors.Is; anything unmatched is an unexpected error (500).
var (
	ErrUnauthorized = errors.New("authentication required")
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")

	// Delivery target errors, all validation subkinds
	ErrInvalidTarget   = fmt.Errorf("%w: invalid token", ErrValidation)
	ErrNoValidTargets  = fmt.Errorf("%w: no valid tokens", ErrValidation)
	ErrMissingTarget   = fmt.Errorf("%w: token, tokens or platform is required", ErrValidation)
	ErrInvalidPlatform = fmt.Errorf("%w: platform must be ios, android or all", ErrValidation)
)

// Validationf builds a field-level validation error
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// StatusCode maps a taxonomy error to its HTTP status
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
