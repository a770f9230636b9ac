package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller may not act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidCurrency indicates a currency code outside the supported set.
var ErrInvalidCurrency = errors.New("invalid currency")

// InvalidCurrencyError reports the offending currency code.
// It matches ErrInvalidCurrency and ErrValidation with errors.Is.
type InvalidCurrencyError struct {
	Code string
}

func (e *InvalidCurrencyError) Error() string {
	return fmt.Sprintf("unsupported currency code %q", e.Code)
}

func (e *InvalidCurrencyError) Is(target error) bool {
	return target == ErrInvalidCurrency || target == ErrValidation
}

// NewInvalidCurrencyError creates an InvalidCurrencyError for the given code.
func NewInvalidCurrencyError(code string) error {
	return &InvalidCurrencyError{Code: code}
}

// AppError carries an HTTP-ish status code alongside a message and the underlying cause.
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

// NewAppError wraps err with a status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
