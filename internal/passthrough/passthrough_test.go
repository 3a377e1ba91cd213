package passthrough

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/gorewood/git-home/internal/output"
)

func TestArgs(t *testing.T) {
	got := Args("/home/alice/.config/git_home", "/home/alice", []string{"log", "-1"})
	want := []string{
		"--git-dir=/home/alice/.config/git_home",
		"--work-tree=/home/alice",
		"-c", "status.showUntrackedFiles=no",
		"--no-pager",
		"log", "-1",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Args() = %q, want %q", got, want)
	}
}

// fakeGit writes a shell script standing in for git.
func fakeGit(t *testing.T, body string) string {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	path := filepath.Join(t.TempDir(), "git")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o700); err != nil {
		t.Fatal(err)
	}
	return path
}

func newExecutor(binary string) (*Executor, *bytes.Buffer, *bytes.Buffer) {
	var stdout, notices bytes.Buffer
	printer := output.NewPrinter(&bytes.Buffer{}, false).WithStderr(&notices)
	return &Executor{
		Binary:  binary,
		Stdin:   strings.NewReader(""),
		Stdout:  &stdout,
		Stderr:  &bytes.Buffer{},
		Printer: printer,
	}, &stdout, &notices
}

func TestForward_Success(t *testing.T) {
	binary := fakeGit(t, `pwd; printf '%s\n' "$@"`+"\n")
	home := t.TempDir()
	executor, stdout, _ := newExecutor(binary)

	err := executor.Forward(context.Background(), "/store", home, []string{"log", "--oneline"})
	if err != nil {
		t.Fatalf("Forward() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	resolvedHome, _ := filepath.EvalSymlinks(home)
	if lines[0] != home && lines[0] != resolvedHome {
		t.Errorf("working dir = %q, want %q", lines[0], home)
	}
	want := Args("/store", home, []string{"log", "--oneline"})
	if !reflect.DeepEqual(lines[1:], want) {
		t.Errorf("args = %q, want %q", lines[1:], want)
	}
}

func TestForward_RelaysExitStatus(t *testing.T) {
	binary := fakeGit(t, "exit 3\n")
	executor, _, _ := newExecutor(binary)

	err := executor.Forward(context.Background(), "/store", t.TempDir(), []string{"status"})
	if code := output.GetExitCode(err); code != 3 {
		t.Errorf("exit code = %d, want 3", code)
	}
	var exitErr *output.ExitError
	if !errors.As(err, &exitErr) || !exitErr.Silent {
		t.Errorf("relayed status should be silent, got %#v", err)
	}
}

func TestForward_KilledBySignal(t *testing.T) {
	binary := fakeGit(t, "kill -9 $$\n")
	executor, _, notices := newExecutor(binary)

	err := executor.Forward(context.Background(), "/store", t.TempDir(), []string{"log"})
	if err != nil {
		t.Fatalf("Forward() error = %v, want nil", err)
	}
	if !strings.Contains(notices.String(), "signal") {
		t.Errorf("notice = %q, want signal notice", notices.String())
	}
}

func TestForward_SpawnFailure(t *testing.T) {
	executor, _, _ := newExecutor(filepath.Join(t.TempDir(), "missing-git"))

	err := executor.Forward(context.Background(), "/store", t.TempDir(), []string{"log"})
	if code := output.GetExitCode(err); code != output.ExitBackend {
		t.Errorf("exit code = %d, want %d", code, output.ExitBackend)
	}
}
