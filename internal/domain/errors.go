package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrUnauthorized = errors.New("Unauthorized")
	ErrForbidden    = errors.New("Unauthorized")
	ErrNotFound     = errors.New("not found")

	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrVariantNotFound   = errors.New("Variant not found")
	ErrInsufficientStock = errors.New("Insufficient stock")
	ErrCartItemNotFound  = errors.New("Item not found")
	ErrCartEmpty         = errors.New("Cart is empty")

	ErrCouponInvalid      = errors.New("Coupon invalid")
	ErrCouponLimitReached = errors.New("Coupon limit reached")
	ErrMinimumSpendNotMet = errors.New("Minimum spend not met")

	ErrOrderNotFound = errors.New("Order not found")

	ErrPollNotFound  = errors.New("Poll not found")
	ErrInvalidOption = errors.New("Invalid option")
	ErrAlreadyVoted  = errors.New("Already voted")

	ErrInvalidCategories = errors.New("Invalid categories")
)

// ValidationError carries the first human-readable message of a failed
// input schema.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// RateLimitedError is returned when a caller exceeds its window budget.
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limit exceeded, retry after %s", e.RetryAfter.Round(time.Second))
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
