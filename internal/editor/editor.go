// Package editor collects text from the user's external editor.
package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/gorewood/git-home/internal/config"
	"github.com/gorewood/git-home/internal/output"
)

// MessageFile is the name of the buffer handed to the editor.
const MessageFile = "COMMIT_EDITMSG"

// Variables consulted for the editor command, in order.
var editorVars = []string{"GIT_EDITOR", "VISUAL", "EDITOR"}

// Fallbacks tried in PATH when no variable is set.
var fallbacks = []string{"nvim", "vim", "nano", "vi"}

// Resolve returns the editor command line, or "" if none is available.
// lookPath defaults to exec.LookPath.
func Resolve(lookup config.LookupFunc, lookPath func(string) (string, error)) string {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	for _, key := range editorVars {
		if value, _ := lookup(key); strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	for _, name := range fallbacks {
		if _, err := lookPath(name); err == nil {
			return name
		}
	}
	return ""
}

// Editor runs an editor command attached to the terminal.
type Editor struct {
	Command string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// New creates an Editor bound to the process's standard streams.
func New(command string) *Editor {
	return &Editor{
		Command: command,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Edit writes initial to a temporary file, opens it in the editor and
// returns the saved contents once the editor exits.
func (e *Editor) Edit(ctx context.Context, initial string) (string, error) {
	if e.Command == "" {
		return "", output.NewEnvironmentError("no editor found: set $GIT_EDITOR, $VISUAL or $EDITOR, or use commit -m")
	}

	dir, err := os.MkdirTemp("", "git-home-")
	if err != nil {
		return "", output.NewBackendErrorWithCause("could not create message file", err)
	}
	defer os.RemoveAll(dir) //nolint:errcheck // best-effort cleanup of temp dir

	path := filepath.Join(dir, MessageFile)
	if err := os.WriteFile(path, []byte(initial), 0o600); err != nil {
		return "", output.NewBackendErrorWithCause("could not write message file", err)
	}

	// The command string may carry its own arguments ("code --wait").
	// #nosec G204 -- editor comes from the user's environment
	cmd := exec.CommandContext(ctx, "sh", "-c", e.Command+` "$@"`, "sh", path)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", output.NewBackendErrorWithCause(
				fmt.Sprintf("editor %q exited with status %d", e.Command, exitErr.ExitCode()), err)
		}
		return "", output.NewBackendErrorWithCause("could not start editor "+e.Command, err)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is our own temp file
	if err != nil {
		return "", output.NewBackendErrorWithCause("could not read message file", err)
	}
	return string(data), nil
}
