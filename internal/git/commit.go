package git

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
)

// zeroHash tells update-ref the ref must not exist yet.
const zeroHash = "0000000000000000000000000000000000000000"

// Identity is the committer identity read from git configuration.
type Identity struct {
	Name  string
	Email string
}

// Identity reads user.name and user.email. Returns ErrNoIdentity if either
// is missing.
func (r *Repo) Identity(ctx context.Context) (Identity, error) {
	name, err := r.configValue(ctx, "user.name")
	if err != nil {
		return Identity{}, err
	}
	email, err := r.configValue(ctx, "user.email")
	if err != nil {
		return Identity{}, err
	}
	return Identity{Name: name, Email: email}, nil
}

func (r *Repo) configValue(ctx context.Context, key string) (string, error) {
	value, err := r.run(ctx, "config", "--get", key)
	if err != nil {
		var cmdErr *CommandError
		if errors.As(err, &cmdErr) {
			return "", ErrNoIdentity
		}
		return "", err
	}
	if value == "" {
		return "", ErrNoIdentity
	}
	return value, nil
}

// Commit writes the index as a tree and records it as a new commit on HEAD.
// parent is the current HEAD hash, or "" for a root commit. HEAD is moved
// only if it still points at parent. Returns the new commit hash.
func (r *Repo) Commit(ctx context.Context, message, parent string) (string, error) {
	if _, err := r.Identity(ctx); err != nil {
		return "", err
	}

	tree, err := r.run(ctx, "write-tree")
	if err != nil {
		return "", err
	}

	args := []string{"commit-tree", tree}
	if parent != "" {
		args = append(args, "-p", parent)
	}
	args = append(args, "-F", "-")

	if !strings.HasSuffix(message, "\n") {
		message += "\n"
	}
	out, err := r.output(ctx, strings.NewReader(message), args...)
	if err != nil {
		return "", err
	}
	hash := strings.TrimSpace(string(out))

	old := parent
	if old == "" {
		old = zeroHash
	}
	reflog := "commit: " + firstLine(message)
	if parent == "" {
		reflog = "commit (initial): " + firstLine(message)
	}
	if _, err := r.run(ctx, "update-ref", "-m", reflog, "HEAD", hash, old); err != nil {
		return "", err
	}

	r.log.Debug("committed", zap.String("commit", hash), zap.String("parent", parent))
	return hash, nil
}

func firstLine(message string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(message), "\n")
	return line
}
