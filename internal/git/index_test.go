package git

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"testing"
)

func TestStageAllModified(t *testing.T) {
	repo, home := newTestRepo(t)
	ctx := context.Background()

	writeFile(t, home, ".bashrc", "one\n")
	writeFile(t, home, ".vimrc", "one\n")
	writeFile(t, home, ".zshrc", "one\n")
	if err := repo.Stage(ctx, []string{".bashrc", ".vimrc", ".zshrc"}); err != nil {
		t.Fatalf("Stage() error = %v", err)
	}
	if _, err := repo.Commit(ctx, "baseline", ""); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	writeFile(t, home, ".bashrc", "two\n")
	writeFile(t, home, ".vimrc", "two\n")
	writeFile(t, home, ".profile", "untracked\n")

	staged, err := repo.StageAllModified(ctx)
	if err != nil {
		t.Fatalf("StageAllModified() error = %v", err)
	}
	want := []string{".bashrc", ".vimrc"}
	sort.Strings(staged)
	if !reflect.DeepEqual(staged, want) {
		t.Errorf("StageAllModified() = %q, want %q", staged, want)
	}

	index, err := repo.Status(ctx, ScopeIndex)
	if err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	sort.Strings(index)
	if !reflect.DeepEqual(index, want) {
		t.Errorf("index = %q, want %q", index, want)
	}
}

func TestStageAllModified_Nothing(t *testing.T) {
	repo, _ := newTestRepo(t)

	staged, err := repo.StageAllModified(context.Background())
	if err != nil {
		t.Fatalf("StageAllModified() error = %v", err)
	}
	if len(staged) != 0 {
		t.Errorf("StageAllModified() = %q, want none", staged)
	}
}

func TestStage_MissingPath(t *testing.T) {
	repo, _ := newTestRepo(t)

	err := repo.Stage(context.Background(), []string{"does-not-exist"})
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("Stage() error = %v, want *CommandError", err)
	}
	if cmdErr.Stderr == "" {
		t.Error("CommandError should carry git's stderr")
	}
}

func TestGlobalArgs(t *testing.T) {
	got := GlobalArgs("/home/alice/.config/git_home", "/home/alice")
	want := []string{"--git-dir=/home/alice/.config/git_home", "--work-tree=/home/alice"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GlobalArgs() = %q, want %q", got, want)
	}
}
