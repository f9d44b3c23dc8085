package errors

import (
	"errors"
	"io"
	"io/fs"
	"syscall"

	"icatest/internal/winerror"
)

// CodeFallback is reported for failures that carry no better classification.
const CodeFallback = winerror.ERROR_BAD_COMMAND

// CodeOf maps err onto the well-known error code table. A nil error is
// ERROR_SUCCESS; an AppError anywhere in the chain wins over the generic
// filesystem and pipe sentinels.
func CodeOf(err error) winerror.Code {
	if err == nil {
		return winerror.ERROR_SUCCESS
	}
	if appErr, ok := As(err); ok {
		return appErr.Code
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return winerror.ERROR_FILE_NOT_FOUND
	case errors.Is(err, fs.ErrExist):
		return winerror.ERROR_ALREADY_EXISTS
	case errors.Is(err, fs.ErrInvalid):
		return winerror.ERROR_INVALID_PARAMETER
	case errors.Is(err, io.ErrClosedPipe), errors.Is(err, syscall.EPIPE):
		return winerror.ERROR_BAD_PIPE
	case errors.Is(err, syscall.EBUSY):
		return winerror.ERROR_BUSY
	case errors.Is(err, io.ErrUnexpectedEOF):
		return winerror.ERROR_READ_FAULT
	}

	if code, ok := errnoCode(err); ok {
		return code
	}
	return CodeFallback
}

// ExitStatus converts err into a process exit status. Windows reports the
// full code. Elsewhere only the low 8 bits survive, so codes above
// maxExitStatus are clamped to it rather than wrapping (256 would read as
// success, 351 as 95).
func ExitStatus(err error) int {
	return min(int(CodeOf(err)), maxExitStatus)
}
