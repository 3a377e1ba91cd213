package editor

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/git-home/internal/output"
)

func mapLookup(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		value, ok := values[key]
		return value, ok
	}
}

func pathWith(names ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, n := range names {
			if n == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", exec.ErrNotFound
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		path []string
		want string
	}{
		{
			name: "GIT_EDITOR wins",
			env:  map[string]string{"GIT_EDITOR": "hx", "VISUAL": "code --wait", "EDITOR": "vim"},
			want: "hx",
		},
		{
			name: "VISUAL before EDITOR",
			env:  map[string]string{"VISUAL": "code --wait", "EDITOR": "vim"},
			want: "code --wait",
		},
		{name: "EDITOR", env: map[string]string{"EDITOR": " nano "}, want: "nano"},
		{name: "blank values skipped", env: map[string]string{"GIT_EDITOR": "  ", "EDITOR": "vi"}, want: "vi"},
		{name: "nvim fallback", path: []string{"vi", "nvim"}, want: "nvim"},
		{name: "vi fallback", path: []string{"vi"}, want: "vi"},
		{name: "nothing", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(mapLookup(tt.env), pathWith(tt.path...))
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

// writeScript creates an executable shell script and returns its path.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	path := filepath.Join(t.TempDir(), "fake-editor")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o700); err != nil {
		t.Fatal(err)
	}
	return path
}

func quietEditor(command string) *Editor {
	return &Editor{Command: command, Stdin: strings.NewReader(""), Stdout: &strings.Builder{}, Stderr: &strings.Builder{}}
}

func TestEdit_ReturnsSavedBuffer(t *testing.T) {
	script := writeScript(t, `printf 'fix typo\n' | cat - "$1" > "$1.new" && mv "$1.new" "$1"`+"\n")

	got, err := quietEditor(script).Edit(context.Background(), "# template\n")
	if err != nil {
		t.Fatalf("Edit() error = %v", err)
	}
	if got != "fix typo\n# template\n" {
		t.Errorf("Edit() = %q", got)
	}
}

func TestEdit_CommandWithArguments(t *testing.T) {
	script := writeScript(t, `printf '%s\n' "$1" > "$2"`+"\n")

	got, err := quietEditor(script+" --wait").Edit(context.Background(), "")
	if err != nil {
		t.Fatalf("Edit() error = %v", err)
	}
	if got != "--wait\n" {
		t.Errorf("Edit() = %q, want the editor's own argument", got)
	}
}

func TestEdit_MessageFileName(t *testing.T) {
	script := writeScript(t, `basename "$1" > "$1"`+"\n")

	got, err := quietEditor(script).Edit(context.Background(), "")
	if err != nil {
		t.Fatalf("Edit() error = %v", err)
	}
	if strings.TrimSpace(got) != MessageFile {
		t.Errorf("message file = %q, want %q", got, MessageFile)
	}
}

func TestEdit_EditorFails(t *testing.T) {
	script := writeScript(t, "exit 3\n")

	_, err := quietEditor(script).Edit(context.Background(), "")
	if code := output.GetExitCode(err); code != output.ExitBackend {
		t.Errorf("exit code = %d, want %d (err %v)", code, output.ExitBackend, err)
	}
	var exitErr *output.ExitError
	if errors.As(err, &exitErr) && !strings.Contains(exitErr.Message, "status 3") {
		t.Errorf("message = %q, want exit status", exitErr.Message)
	}
}

func TestEdit_NoEditor(t *testing.T) {
	_, err := quietEditor("").Edit(context.Background(), "")
	if code := output.GetExitCode(err); code != output.ExitAborted {
		t.Errorf("exit code = %d, want %d", code, output.ExitAborted)
	}
}
