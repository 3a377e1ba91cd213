// Package passthrough forwards raw arguments to the git executable, bound to
// the git-home store and the home work-tree.
package passthrough

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"go.uber.org/zap"

	"github.com/gorewood/git-home/internal/git"
	"github.com/gorewood/git-home/internal/output"
)

// Args builds the forwarded git argument list.
func Args(store, home string, tokens []string) []string {
	args := git.GlobalArgs(store, home)
	args = append(args, "-c", "status.showUntrackedFiles=no", "--no-pager")
	return append(args, tokens...)
}

// Executor runs git as a child process on the caller's terminal.
type Executor struct {
	Binary string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Printer receives the notice printed when git is killed by a signal.
	Printer *output.Printer
	Logger  *zap.Logger
}

// New creates an Executor attached to the process's standard streams.
func New(printer *output.Printer, logger *zap.Logger) *Executor {
	return &Executor{
		Binary:  git.Binary,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Printer: printer,
		Logger:  logger,
	}
}

// Forward runs git with tokens and waits for it to exit. A non-zero exit is
// returned as a silent output.ExitError carrying the same status. A child
// killed by a signal is reported and treated as success.
func (e *Executor) Forward(ctx context.Context, store, home string, tokens []string) error {
	binary := e.Binary
	if binary == "" {
		binary = git.Binary
	}
	logger := e.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// #nosec G204 -- forwarding user-supplied git arguments is the point
	cmd := exec.CommandContext(ctx, binary, Args(store, home, tokens)...)
	cmd.Dir = home
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	logger.Debug("forwarding", zap.String("binary", binary), zap.Strings("tokens", tokens))
	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return output.NewBackendErrorWithCause("could not run "+binary+": "+err.Error(), err)
	}

	code := exitErr.ExitCode()
	logger.Debug("forwarded command exited", zap.Int("code", code), zap.String("state", exitErr.String()))
	if code == -1 {
		if e.Printer != nil {
			e.Printer.Notice("git terminated by signal (%s)", exitErr.String())
		}
		return nil
	}
	return output.NewExitStatus(code)
}
