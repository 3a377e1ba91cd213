package output

import (
	"errors"
	"testing"
)

func TestExitCodeConstants(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		expected int
	}{
		{"ExitSuccess", ExitSuccess, 0},
		{"ExitAborted", ExitAborted, 1},
		{"ExitUsage", ExitUsage, 64},
		{"ExitBackend", ExitBackend, 74},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.code != tt.expected {
				t.Errorf("%s = %d, want %d", tt.name, tt.code, tt.expected)
			}
		})
	}
}

func TestExitError(t *testing.T) {
	tests := []struct {
		name        string
		err         *ExitError
		wantCode    int
		wantMessage string
		wantSilent  bool
	}{
		{
			name:        "usage error",
			err:         NewUsageError("add needs at least one path", "git home add <file>"),
			wantCode:    ExitUsage,
			wantMessage: "add needs at least one path",
		},
		{
			name:        "scope error",
			err:         NewScopeError("outside home", nil),
			wantCode:    ExitUsage,
			wantMessage: "outside home",
		},
		{
			name:        "environment error",
			err:         NewEnvironmentError("$HOME is not set"),
			wantCode:    ExitAborted,
			wantMessage: "$HOME is not set",
		},
		{
			name:        "declined prompt",
			err:         NewAbortedError("nothing created", ExitSuccess),
			wantCode:    ExitSuccess,
			wantMessage: "nothing created",
		},
		{
			name:        "backend error",
			err:         NewBackendError("could not create commit"),
			wantCode:    ExitBackend,
			wantMessage: "could not create commit",
		},
		{
			name:       "exit status",
			err:        NewExitStatus(3),
			wantCode:   3,
			wantSilent: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if tt.err.Error() != tt.wantMessage {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.wantMessage)
			}
			if tt.err.Silent != tt.wantSilent {
				t.Errorf("Silent = %v, want %v", tt.err.Silent, tt.wantSilent)
			}
		})
	}
}

func TestExitErrorWrapping(t *testing.T) {
	underlying := errors.New("index.lock exists")
	err := NewBackendErrorWithCause("could not write index", underlying)

	if err.Code != ExitBackend {
		t.Errorf("Code = %d, want %d", err.Code, ExitBackend)
	}
	if !errors.Is(err, underlying) {
		t.Error("errors.Is should find underlying error")
	}
	if err.Error() != "could not write index" {
		t.Errorf("Error() = %q, want %q", err.Error(), "could not write index")
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: ExitSuccess},
		{name: "usage", err: NewUsageError("bad", ""), expected: ExitUsage},
		{name: "backend", err: NewBackendError("failed"), expected: ExitBackend},
		{name: "forwarded status", err: NewExitStatus(128), expected: 128},
		{name: "wrapped", err: errors.Join(errors.New("ctx"), NewEnvironmentError("x")), expected: ExitAborted},
		{name: "regular error defaults to backend", err: errors.New("some error"), expected: ExitBackend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetExitCode(tt.err)
			if got != tt.expected {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.expected)
			}
		})
	}
}
