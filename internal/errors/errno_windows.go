//go:build windows

package errors

import (
	"math"

	"icatest/internal/winerror"
)

const maxExitStatus = math.MaxInt

func errnoCode(err error) (winerror.Code, bool) {
	return winerror.FromErrno(err)
}
