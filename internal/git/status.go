package git

import (
	"context"
	"fmt"
	"strings"
)

// Scope selects which pair of trees Status compares.
type Scope int

const (
	// ScopeWorktree compares the work-tree against the index.
	ScopeWorktree Scope = iota
	// ScopeIndex compares the index against HEAD (or the empty tree).
	ScopeIndex
)

func (s Scope) String() string {
	if s == ScopeIndex {
		return "index"
	}
	return "worktree"
}

// StatusEntry is one record of porcelain status output.
type StatusEntry struct {
	Index    byte
	Worktree byte
	Path     string
}

// In reports whether the entry has a change in the given scope.
func (e StatusEntry) In(scope Scope) bool {
	if scope == ScopeIndex {
		return e.Index != ' ' && e.Index != '?'
	}
	return e.Worktree != ' ' && e.Worktree != '?'
}

// Status returns the work-tree relative paths changed in scope.
// Untracked files are never reported.
func (r *Repo) Status(ctx context.Context, scope Scope) ([]string, error) {
	out, err := r.output(ctx, nil,
		"status", "--porcelain=v1", "-z", "--untracked-files=no", "--no-renames")
	if err != nil {
		return nil, err
	}

	entries, err := parseStatus(string(out))
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if entry.In(scope) {
			paths = append(paths, entry.Path)
		}
	}
	return paths, nil
}

// parseStatus parses NUL-terminated porcelain v1 records ("XY path").
func parseStatus(out string) ([]StatusEntry, error) {
	var entries []StatusEntry
	for _, record := range strings.Split(out, "\x00") {
		if record == "" {
			continue
		}
		if len(record) < 4 || record[2] != ' ' {
			return nil, fmt.Errorf("malformed status record %q", record)
		}
		entries = append(entries, StatusEntry{
			Index:    record[0],
			Worktree: record[1],
			Path:     record[3:],
		})
	}
	return entries, nil
}
