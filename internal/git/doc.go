// Package git drives the bare store behind git-home.
//
// A Repo is a bare repository whose work-tree is bound to the user's home
// directory. Opening, initializing and reading history go through go-git.
// Index and commit writes shell out to the git executable with explicit
// --git-dir and --work-tree flags, so the store never needs a .git entry
// inside $HOME.
//
// # Opening a Store
//
//	repo, err := git.Open(storeDir, home, logger)
//	if errors.Is(err, git.ErrStoreNotFound) {
//	    repo, err = git.Init(storeDir, home, logger)
//	}
//
// # Index and Status
//
//	err := repo.Stage(ctx, paths)
//	unstaged, err := repo.Status(ctx, git.ScopeWorktree)
//	staged, err := repo.Status(ctx, git.ScopeIndex)
//
// Status never reports untracked files.
//
// # History
//
//	head, err := repo.Head()          // ErrNoHistory before the first commit
//	id, err := repo.Commit(ctx, msg, head)
//	entry, err := repo.LastEntry()
//
// Commit requires user.name and user.email in the store's git configuration
// and fails with ErrNoIdentity otherwise.
package git
