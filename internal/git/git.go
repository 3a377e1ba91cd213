package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Binary is the git executable used for index and commit operations.
const Binary = "git"

// ErrGitNotFound is returned when the git executable is not on PATH.
var ErrGitNotFound = errors.New("git not found: ensure git is installed and in PATH")

// CommandError describes a failed git invocation.
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	msg := e.Stderr
	if msg == "" {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("git %s failed: %s", subcommand(e.Args), msg)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// GlobalArgs returns the flags that bind a git invocation to the store and work-tree.
func GlobalArgs(store, home string) []string {
	return []string{"--git-dir=" + store, "--work-tree=" + home}
}

// run executes git against the store and returns stdout with surrounding
// whitespace trimmed.
func (r *Repo) run(ctx context.Context, args ...string) (string, error) {
	out, err := r.output(ctx, nil, args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// output executes git against the store and returns raw stdout.
// stdin may be nil.
func (r *Repo) output(ctx context.Context, stdin io.Reader, args ...string) ([]byte, error) {
	full := append(GlobalArgs(r.store, r.home), args...)
	cmd := exec.CommandContext(ctx, Binary, full...)
	cmd.Dir = r.home
	cmd.Stdin = stdin

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	r.log.Debug("git",
		zap.Strings("args", args),
		zap.Duration("elapsed", time.Since(start)),
		zap.Error(err),
	)
	if err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return nil, ErrGitNotFound
		}
		return nil, &CommandError{
			Args:   args,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}

	return stdout.Bytes(), nil
}

func subcommand(args []string) string {
	for _, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			return arg
		}
	}
	return strings.Join(args, " ")
}
