package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

const testIdentity = "[user]\n\tname = Test User\n\temail = test@example.com\n"

// isolateGitConfig points git at a throwaway global config holding config.
func isolateGitConfig(t *testing.T, config string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gitconfig")
	if err := os.WriteFile(path, []byte(config), 0o600); err != nil {
		t.Fatalf("writing gitconfig: %v", err)
	}
	t.Setenv("GIT_CONFIG_GLOBAL", path)
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
}

// newTestRepo initializes a store under a fresh home directory.
// Skips the test if git is not installed.
func newTestRepo(t *testing.T) (*Repo, string) {
	t.Helper()
	if _, err := exec.LookPath(Binary); err != nil {
		t.Skip("git not installed")
	}
	isolateGitConfig(t, testIdentity)

	home := filepath.Join(t.TempDir(), "home")
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatalf("creating home: %v", err)
	}

	repo, err := Init(filepath.Join(home, ".config", "git_home"), home, zap.NewNop())
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	return repo, home
}

func writeFile(t *testing.T, home, rel, content string) string {
	t.Helper()
	path := filepath.Join(home, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}
