package errors

import (
	"time"

	"icatest/internal/winerror"
)

// New creates a generic AppError with the supplied metadata.
func New(code winerror.Code, category ErrorCategory, message string, err error) *AppError {
	return &AppError{
		Code:      code,
		Category:  category,
		Message:   message,
		Err:       err,
		Timestamp: time.Now(),
	}
}

func newCategory(category ErrorCategory, message string, err error) *AppError {
	return New(category.DefaultCode(), category, message, err)
}

// SystemError creates a SYSTEM category error instance.
func SystemError(message string, err error) *AppError {
	return newCategory(ErrCategorySystem, message, err)
}

// ConfigError creates a CONFIG category error instance.
func ConfigError(message string, err error) *AppError {
	return newCategory(ErrCategoryConfig, message, err)
}

// ValidationError creates a VALIDATION category error instance.
func ValidationError(message string, err error) *AppError {
	return newCategory(ErrCategoryValidation, message, err)
}

// UsageError creates a USAGE category error instance for bad command lines.
func UsageError(message string, err error) *AppError {
	return newCategory(ErrCategoryUsage, message, err)
}

// IOError creates an IO category error instance.
func IOError(message string, err error) *AppError {
	e := newCategory(ErrCategoryIO, message, err)
	e.Recoverable = true
	return e
}

// FormatError creates a FORMAT category error instance.
func FormatError(message string, err error) *AppError {
	return newCategory(ErrCategoryFormat, message, err)
}

// NotFound reports a missing item with ERROR_FILE_NOT_FOUND.
func NotFound(message string, err error) *AppError {
	return New(winerror.ERROR_FILE_NOT_FOUND, ErrCategoryValidation, message, err)
}

// Busy reports a contended resource with ERROR_BUSY.
func Busy(message string, err error) *AppError {
	return New(winerror.ERROR_BUSY, ErrCategorySystem, message, err).WithRecoverable(true)
}
