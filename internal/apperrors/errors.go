package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// ErrForbidden indicates that the acting user is not allowed to perform the
// operation, typically because they are not the owning condominium's admin.
var ErrForbidden = errors.New("actor is not authorized for this condominium")

// ErrInvalidTransition indicates an attempted state change out of a terminal
// or unexpected state. It usually signals a stale client view or a lost race
// against a concurrent decision.
var ErrInvalidTransition = errors.New("invalid state transition")

// ErrAlreadySettled indicates that an approved payment already exists for the
// department and period being paid.
var ErrAlreadySettled = errors.New("payment already settled for this period")

// ErrMissingReason indicates a rejection was attempted without the required
// non-empty justification.
var ErrMissingReason = errors.New("rejection reason is required")

// ErrDuplicatePeriod indicates a monthly expense already exists for the
// condominium and period. Re-creation is a conflict, not an upsert.
var ErrDuplicatePeriod = errors.New("monthly expense already recorded for period")

// ErrUnavailable indicates the persistence layer failed unexpectedly. The
// engine never retries; retry policy belongs to the caller.
var ErrUnavailable = errors.New("storage unavailable")

// ShareOverflowError is returned when a share assignment would push the
// condominium-wide sum of shares past 1 (with the additive tolerance applied
// to the raw sum). It carries the would-be total so callers can display it.
type ShareOverflowError struct {
	WouldBeTotal decimal.Decimal
}

func (e *ShareOverflowError) Error() string {
	return fmt.Sprintf("share assignment would raise the total to %s, exceeding 1", e.WouldBeTotal.StringFixed(3))
}

// NewShareOverflowError builds a ShareOverflowError carrying the raw would-be total.
func NewShareOverflowError(wouldBeTotal decimal.Decimal) *ShareOverflowError {
	return &ShareOverflowError{WouldBeTotal: wouldBeTotal}
}

// AppError wraps an underlying error with an HTTP-ish status code and a
// caller-safe message. Repositories use it for unexpected failures so the
// handler layer never leaks driver internals.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a generic AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError wrapping ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return NewAppError(404, message, ErrNotFound)
}

// NewConflictError creates an AppError wrapping ErrDuplicate.
func NewConflictError(message string) *AppError {
	return NewAppError(409, message, ErrDuplicate)
}

// NewValidationFailedError creates an AppError wrapping ErrValidation.
func NewValidationFailedError(message string) *AppError {
	return NewAppError(400, message, ErrValidation)
}

// NewUnavailableError creates an AppError wrapping ErrUnavailable for
// unexpected persistence failures. The driver error stays joined in so logs
// keep the root cause while errors.Is(err, ErrUnavailable) still matches.
func NewUnavailableError(message string, err error) *AppError {
	return NewAppError(503, message, errors.Join(ErrUnavailable, err))
}
