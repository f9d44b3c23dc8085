//go:build windows

package winerror

import (
	"errors"

	"golang.org/x/sys/windows"
)

// Errno converts c to the errno type returned by Windows system calls.
func (c Code) Errno() windows.Errno {
	return windows.Errno(c)
}

// FromErrno extracts a table code from a system call error.
func FromErrno(err error) (Code, bool) {
	var errno windows.Errno
	if !errors.As(err, &errno) {
		return 0, false
	}
	code := Code(errno)
	return code, code.Known()
}
