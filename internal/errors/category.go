package errors

import "icatest/internal/winerror"

// ErrorCategory groups related application errors for unified handling.
type ErrorCategory string

const (
	ErrCategorySystem     ErrorCategory = "SYSTEM"
	ErrCategoryConfig     ErrorCategory = "CONFIG"
	ErrCategoryValidation ErrorCategory = "VALIDATION"
	ErrCategoryUsage      ErrorCategory = "USAGE"
	ErrCategoryIO         ErrorCategory = "IO"
	ErrCategoryFormat     ErrorCategory = "FORMAT"
)

// DefaultCode returns the code used for a category when none is given.
func (c ErrorCategory) DefaultCode() winerror.Code {
	switch c {
	case ErrCategoryConfig:
		return winerror.ERROR_BAD_ENVIRONMENT
	case ErrCategoryValidation:
		return winerror.ERROR_INVALID_PARAMETER
	case ErrCategoryUsage:
		return winerror.ERROR_BAD_ARGUMENTS
	case ErrCategoryIO:
		return winerror.ERROR_READ_FAULT
	case ErrCategoryFormat:
		return winerror.ERROR_BAD_FORMAT
	default:
		return winerror.ERROR_BAD_COMMAND
	}
}
