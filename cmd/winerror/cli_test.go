package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "icatest/internal/errors"
	"icatest/internal/winerror"
)

func run(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	t.Setenv("WINERROR_CONFIG", "")

	var stdout, stderr bytes.Buffer
	err := newCLI(&stdout, &stderr).execute(context.Background(), append([]string{"--no-color"}, args...))
	return stdout.String(), stderr.String(), apperrors.ExitStatus(err)
}

func TestLookupCommand(t *testing.T) {
	stdout, _, status := run(t, "lookup", "ERROR_ALREADY_EXISTS")
	if status != 0 || stdout != "ERROR_ALREADY_EXISTS = 183\n" {
		t.Fatalf("status %d, stdout %q", status, stdout)
	}
}

func TestExitStatuses(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want winerror.Code
	}{
		{"undefined name", []string{"lookup", "ERROR_NOT_DEFINED"}, winerror.ERROR_INVALID_PARAMETER},
		{"missing args", []string{"lookup"}, winerror.ERROR_BAD_ARGUMENTS},
		{"extra args", []string{"list", "extra"}, winerror.ERROR_BAD_ARGUMENTS},
		{"bad flag", []string{"list", "--bogus"}, winerror.ERROR_BAD_ARGUMENTS},
		{"unknown value", []string{"name", "1"}, winerror.ERROR_FILE_NOT_FOUND},
		{"bad value", []string{"name", "0xZZ"}, winerror.ERROR_BAD_FORMAT},
		{"bad log format", []string{"--log-format", "xml", "list"}, winerror.ERROR_BAD_ARGUMENTS},
		{"unknown command", []string{"frobnicate"}, winerror.ERROR_BAD_COMMAND},
		{"missing config", []string{"--config", "/nonexistent/winerror.yaml", "list"}, winerror.ERROR_BAD_ENVIRONMENT},
		{"list", []string{"list"}, winerror.ERROR_SUCCESS},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, status := run(t, tt.args...)
			if status != int(tt.want) {
				t.Fatalf("status = %d, want %d (%s); stderr %q", status, tt.want, tt.want, stderr)
			}
			if tt.want.Failed() && !strings.Contains(stderr, "error_code="+tt.want.String()) {
				t.Fatalf("stderr missing error code: %q", stderr)
			}
		})
	}
}

func TestJSONLoggingFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "winerror.yaml")
	body := "log:\n  format: json\n  level: debug\noutput:\n  hex: true\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	stdout, stderr, status := run(t, "--config", path, "name", "230")
	if status != 0 {
		t.Fatalf("status %d, stderr %q", status, stderr)
	}
	if stdout != "230 (0x00E6) = ERROR_BAD_PIPE\n" {
		t.Fatalf("stdout = %q", stdout)
	}
	if !strings.Contains(stderr, `"invocation_id"`) || !strings.Contains(stderr, `"command":"name"`) {
		t.Fatalf("stderr = %q", stderr)
	}
}
