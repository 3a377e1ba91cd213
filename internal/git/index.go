package git

import "context"

// Stage adds paths to the index in a single git invocation. Paths may be
// absolute (inside the work-tree) or relative to it. The index is written
// before Stage returns.
func (r *Repo) Stage(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	args := append([]string{"add", "--"}, paths...)
	_, err := r.run(ctx, args...)
	return err
}

// StageAllModified stages every tracked file that differs from the index
// and returns the staged paths.
func (r *Repo) StageAllModified(ctx context.Context) ([]string, error) {
	modified, err := r.Status(ctx, ScopeWorktree)
	if err != nil {
		return nil, err
	}
	if err := r.Stage(ctx, modified); err != nil {
		return nil, err
	}
	return modified, nil
}
