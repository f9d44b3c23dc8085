//go:build !windows

package errors

import (
	"testing"

	"icatest/internal/winerror"
)

func TestExitStatusClampsToByte(t *testing.T) {
	tests := []struct {
		code winerror.Code
		want int
	}{
		{winerror.ERROR_BAD_PIPE, 230},
		{winerror.ERROR_FAIL_SHUTDOWN, 255},
		{winerror.ERROR_FAIL_RESTART, 255},
		{256, 255},
	}
	for _, tt := range tests {
		err := New(tt.code, ErrCategorySystem, "shutdown", nil)
		if got := ExitStatus(err); got != tt.want {
			t.Errorf("ExitStatus(%s) = %d, want %d", tt.code, got, tt.want)
		}
	}
}
