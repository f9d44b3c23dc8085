package errors

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"syscall"
	"testing"

	pkgerrors "github.com/pkg/errors"

	"icatest/internal/winerror"
)

func TestCodeOf(t *testing.T) {
	_, statErr := os.Stat("/definitely/not/here/icatest")

	tests := []struct {
		name string
		err  error
		want winerror.Code
	}{
		{"nil", nil, winerror.ERROR_SUCCESS},
		{"app error", ConfigError("bad config", nil), winerror.ERROR_BAD_ENVIRONMENT},
		{"wrapped app error", fmt.Errorf("outer: %w", UsageError("two args", nil)), winerror.ERROR_BAD_ARGUMENTS},
		{"pkg wrapped app error", pkgerrors.Wrap(FormatError("hex", nil), "parse"), winerror.ERROR_BAD_FORMAT},
		{"app error wins over sentinel", ValidationError("x", fs.ErrNotExist), winerror.ERROR_INVALID_PARAMETER},
		{"not exist", statErr, winerror.ERROR_FILE_NOT_FOUND},
		{"exist", fmt.Errorf("mkdir: %w", fs.ErrExist), winerror.ERROR_ALREADY_EXISTS},
		{"invalid", fs.ErrInvalid, winerror.ERROR_INVALID_PARAMETER},
		{"closed pipe", io.ErrClosedPipe, winerror.ERROR_BAD_PIPE},
		{"epipe", fmt.Errorf("write: %w", syscall.EPIPE), winerror.ERROR_BAD_PIPE},
		{"short read", io.ErrUnexpectedEOF, winerror.ERROR_READ_FAULT},
		{"unclassified", errors.New("boom"), CodeFallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Fatalf("CodeOf() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestExitStatus(t *testing.T) {
	if got := ExitStatus(nil); got != 0 {
		t.Fatalf("ExitStatus(nil) = %d", got)
	}
	if got := ExitStatus(NotFound("missing", nil)); got != 2 {
		t.Fatalf("ExitStatus(NotFound) = %d", got)
	}
	if got := ExitStatus(Busy("locked", nil)); got != 170 {
		t.Fatalf("ExitStatus(Busy) = %d", got)
	}
	if got := ExitStatus(SystemError("failed", nil)); got != int(winerror.ERROR_BAD_COMMAND) {
		t.Fatalf("ExitStatus(SystemError) = %d", got)
	}
}

func TestCategoryDefaults(t *testing.T) {
	tests := map[ErrorCategory]winerror.Code{
		ErrCategorySystem:     winerror.ERROR_BAD_COMMAND,
		ErrCategoryConfig:     winerror.ERROR_BAD_ENVIRONMENT,
		ErrCategoryValidation: winerror.ERROR_INVALID_PARAMETER,
		ErrCategoryUsage:      winerror.ERROR_BAD_ARGUMENTS,
		ErrCategoryIO:         winerror.ERROR_READ_FAULT,
		ErrCategoryFormat:     winerror.ERROR_BAD_FORMAT,
	}
	for category, want := range tests {
		if got := category.DefaultCode(); got != want {
			t.Errorf("%s.DefaultCode() = %s, want %s", category, got, want)
		}
	}
}

func TestAppErrorMessage(t *testing.T) {
	err := IOError("read config file", io.EOF).WithOperation("read").WithField("path", "winerror.yaml")

	msg := err.Error()
	if !strings.Contains(msg, "[IO:ERROR_READ_FAULT]") || !strings.Contains(msg, "EOF") {
		t.Fatalf("Error() = %q", msg)
	}
	if !err.Recoverable {
		t.Fatal("IO errors should be recoverable")
	}
	if !errors.Is(err, io.EOF) {
		t.Fatal("Unwrap should expose io.EOF")
	}
	if err.Metadata["path"] != "winerror.yaml" {
		t.Fatalf("metadata = %v", err.Metadata)
	}

	err.WithCode(winerror.ERROR_BAD_PIPE)
	if !HasCode(err, winerror.ERROR_BAD_PIPE) {
		t.Fatal("WithCode did not override the code")
	}
}

func TestMetadataClone(t *testing.T) {
	var empty Metadata
	if empty.Clone() != nil {
		t.Fatal("empty clone should be nil")
	}

	m := Metadata{"a": 1}
	c := m.Clone()
	c["a"] = 2
	if m["a"] != 1 {
		t.Fatal("clone shares storage with source")
	}
}

func TestNilAppError(t *testing.T) {
	var e *AppError
	if e.Error() != "<nil>" || e.Unwrap() != nil {
		t.Fatal("nil receiver handling changed")
	}
	if e.TimestampOrNow().IsZero() {
		t.Fatal("TimestampOrNow should never be zero")
	}
}
