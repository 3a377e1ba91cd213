// Package pathscope canonicalizes user-supplied paths and confines them to
// the invoking user's home directory.
package pathscope

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gorewood/git-home/internal/output"
)

var (
	// ErrNotInHomeDirectory is returned for paths outside the invoking user's home tree.
	ErrNotInHomeDirectory = errors.New("path is not inside the user's home directory")
	// ErrResolution is returned when a path does not exist or cannot be canonicalized.
	ErrResolution = errors.New("could not canonicalize path")
	// ErrEncoding is returned when a resolved path is not valid UTF-8.
	ErrEncoding = errors.New("could not convert path to string")
)

// Canonicalizer resolves paths and checks that they belong to User's home.
//
// The owner segment is the last segment of the canonical home directory,
// so /home/alice owns index 1 and /root owns index 0.
type Canonicalizer struct {
	home     string
	homeSegs []string
	user     string
}

// New creates a Canonicalizer for the given home directory and user name.
// home is resolved to its symlink-free form once, here.
func New(home, user string) (*Canonicalizer, error) {
	resolved, err := resolve(home)
	if err != nil {
		return nil, err
	}
	return &Canonicalizer{
		home:     resolved,
		homeSegs: segments(resolved),
		user:     user,
	}, nil
}

// Home returns the canonical home directory.
func (c *Canonicalizer) Home() string {
	return c.home
}

// Canonicalize returns the absolute, symlink-free form of path.
//
// Errors:
//   - ErrResolution (exit 74) when the path is missing or cannot be resolved
//   - ErrEncoding (exit 74) when the result is not valid UTF-8
//   - ErrNotInHomeDirectory (exit 64) when the result is the filesystem root,
//     a top-level directory, the home directory itself, or lies outside it
func (c *Canonicalizer) Canonicalize(path string) (string, error) {
	resolved, err := resolve(path)
	if err != nil {
		return "", err
	}

	segs := segments(resolved)
	if len(c.homeSegs) == 0 || len(segs) < 2 {
		return "", output.NewScopeError("cannot use git home at top level of file system",
			fmt.Errorf("%w: %s", ErrNotInHomeDirectory, resolved))
	}
	if len(segs) <= len(c.homeSegs) || segs[len(c.homeSegs)-1] != c.user || !hasPrefix(segs, c.homeSegs) {
		return "", output.NewScopeError("git home should only be used on files in the user's own home directory",
			fmt.Errorf("%w: %s", ErrNotInHomeDirectory, resolved))
	}

	return resolved, nil
}

// Rel returns path relative to the canonical home directory, slash-separated.
func (c *Canonicalizer) Rel(path string) (string, error) {
	rel, err := filepath.Rel(c.home, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", output.NewScopeError("path is outside the home directory",
			fmt.Errorf("%w: %s", ErrNotInHomeDirectory, path))
	}
	return filepath.ToSlash(rel), nil
}

// resolve makes path absolute and evaluates every symlink in it.
func resolve(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", output.NewBackendErrorWithCause("couldn't canonicalize path: "+err.Error(),
			fmt.Errorf("%w: %w", ErrResolution, err))
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		msg := err.Error()
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			msg = pathErr.Err.Error() + ": " + path
		}
		return "", output.NewBackendErrorWithCause("couldn't canonicalize path: "+msg,
			fmt.Errorf("%w: %w", ErrResolution, err))
	}
	if !utf8.ValidString(resolved) {
		return "", output.NewBackendErrorWithCause("could not convert path to string",
			fmt.Errorf("%w: %q", ErrEncoding, resolved))
	}
	return resolved, nil
}

// segments splits a clean absolute path into its non-root components.
func segments(path string) []string {
	trimmed := strings.Trim(filepath.ToSlash(path), "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

func hasPrefix(segs, prefix []string) bool {
	if len(prefix) > len(segs) {
		return false
	}
	for i := range prefix {
		if segs[i] != prefix[i] {
			return false
		}
	}
	return true
}
