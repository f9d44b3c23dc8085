//go:build windows

package winerror

import (
	"fmt"
	"testing"

	"golang.org/x/sys/windows"
)

func TestErrnoMatchesSystemHeaders(t *testing.T) {
	tests := []struct {
		code Code
		want windows.Errno
	}{
		{ERROR_FILE_NOT_FOUND, windows.ERROR_FILE_NOT_FOUND},
		{ERROR_INVALID_PARAMETER, windows.ERROR_INVALID_PARAMETER},
		{ERROR_ALREADY_EXISTS, windows.ERROR_ALREADY_EXISTS},
	}
	for _, tt := range tests {
		if got := tt.code.Errno(); got != tt.want {
			t.Errorf("%s.Errno() = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestFromErrno(t *testing.T) {
	err := fmt.Errorf("open: %w", windows.ERROR_FILE_NOT_FOUND)
	code, ok := FromErrno(err)
	if !ok || code != ERROR_FILE_NOT_FOUND {
		t.Fatalf("FromErrno = (%v, %v)", code, ok)
	}
	if _, ok := FromErrno(fmt.Errorf("plain")); ok {
		t.Fatal("plain error should not map")
	}
}
