// Package winerror is a fixed table of Windows system error codes with
// lookup by name and by value.
package winerror

import "strconv"

// Code is a Windows system error code (a DWORD on the wire).
type Code uint32

// Names follow the Win32 headers so call sites read like the documentation.
const (
	ERROR_SUCCESS           Code = 0
	ERROR_FILE_NOT_FOUND    Code = 2
	ERROR_BAD_ENVIRONMENT   Code = 9
	ERROR_BAD_FORMAT        Code = 11
	ERROR_NO_MORE_FILES     Code = 18
	ERROR_BAD_COMMAND       Code = 22
	ERROR_READ_FAULT        Code = 30
	ERROR_INVALID_PARAMETER Code = 87
	ERROR_PROC_NOT_FOUND    Code = 127
	ERROR_BAD_ARGUMENTS     Code = 160
	ERROR_BUSY              Code = 170
	ERROR_ALREADY_EXISTS    Code = 183
	ERROR_BAD_PIPE          Code = 230
	ERROR_FAIL_SHUTDOWN     Code = 351
	ERROR_FAIL_RESTART      Code = 352
)

// String returns the symbolic name of c, or Code(n) when c is not in the table.
func (c Code) String() string {
	if name, ok := c.Name(); ok {
		return name
	}
	return "Code(" + strconv.FormatUint(uint64(c), 10) + ")"
}

// Name returns the first table name bound to c.
func (c Code) Name() (string, bool) {
	for _, info := range table {
		if info.Value == c {
			return info.Name, true
		}
	}
	return "", false
}

// Known reports whether c appears in the table.
func (c Code) Known() bool {
	_, ok := c.Name()
	return ok
}

// Description returns the short message for c, empty when unknown.
func (c Code) Description() string {
	for _, info := range table {
		if info.Value == c {
			return info.Description
		}
	}
	return ""
}

// Failed reports whether c signals anything other than success.
func (c Code) Failed() bool {
	return c != ERROR_SUCCESS
}
