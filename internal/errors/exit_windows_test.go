//go:build windows

package errors

import (
	"testing"

	"icatest/internal/winerror"
)

func TestExitStatusKeepsFullCode(t *testing.T) {
	err := New(winerror.ERROR_FAIL_RESTART, ErrCategorySystem, "restart", nil)
	if got := ExitStatus(err); got != 352 {
		t.Fatalf("ExitStatus = %d, want 352", got)
	}
}
