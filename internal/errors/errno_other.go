//go:build !windows

package errors

import "icatest/internal/winerror"

const maxExitStatus = 255

// Unix errno values do not share the Windows numbering.
func errnoCode(error) (winerror.Code, bool) {
	return 0, false
}
