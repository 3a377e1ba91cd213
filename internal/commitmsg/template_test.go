package commitmsg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_Builtin(t *testing.T) {
	tmpl, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if tmpl.Source != "built-in" {
		t.Errorf("Source = %q, want built-in", tmpl.Source)
	}
	if tmpl.Name != "commit" {
		t.Errorf("Name = %q, want commit", tmpl.Name)
	}
	if tmpl.CommentChar != "#" {
		t.Errorf("CommentChar = %q, want #", tmpl.CommentChar)
	}
	if !strings.Contains(tmpl.Content, "empty message aborts the commit") {
		t.Errorf("Content = %q", tmpl.Content)
	}
}

func TestLoad_NoConfigDir(t *testing.T) {
	tmpl, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if tmpl.Source != "built-in" {
		t.Errorf("Source = %q, want built-in", tmpl.Source)
	}
}

func writeTemplate(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "templates", "commit.md")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoad_UserOverride(t *testing.T) {
	dir := writeTemplate(t, "---\nname: mine\ncomment_char: \";\"\n---\n; describe the dotfile change\n")

	tmpl, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if tmpl.Name != "mine" || tmpl.CommentChar != ";" {
		t.Errorf("template = %+v", tmpl)
	}
	if tmpl.Source != filepath.Join(dir, "templates", "commit.md") {
		t.Errorf("Source = %q", tmpl.Source)
	}
}

func TestLoad_UserWithoutFrontmatter(t *testing.T) {
	dir := writeTemplate(t, "# what changed?\n")

	tmpl, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if tmpl.CommentChar != DefaultCommentChar {
		t.Errorf("CommentChar = %q, want default", tmpl.CommentChar)
	}
	if tmpl.Content != "# what changed?" {
		t.Errorf("Content = %q", tmpl.Content)
	}
}

func TestLoad_InvalidFrontmatter(t *testing.T) {
	dir := writeTemplate(t, "---\nname: [unclosed\n---\nbody\n")

	if _, err := Load(dir); err == nil {
		t.Error("Load() should fail on invalid frontmatter")
	}
}

func TestSplitFrontmatter(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		frontmatter string
		content     string
	}{
		{"none", "body", "", "body"},
		{"simple", "---\nname: x\n---\nbody", "name: x", "body"},
		{"unterminated", "---\nname: x\nbody", "", "---\nname: x\nbody"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, content := splitFrontmatter(tt.raw)
			if fm != tt.frontmatter || content != tt.content {
				t.Errorf("splitFrontmatter() = (%q, %q), want (%q, %q)", fm, content, tt.frontmatter, tt.content)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	tmpl := &Template{Content: "# header", CommentChar: "#"}

	got := tmpl.Build([]string{".bashrc", ".config/nvim/init.lua"})
	want := "\n# header\n#\n# Changes to be committed:\n#\t.bashrc\n#\t.config/nvim/init.lua\n"
	if got != want {
		t.Errorf("Build() = %q, want %q", got, want)
	}

	got = tmpl.Build(nil)
	if !strings.Contains(got, "# No changes staged.") {
		t.Errorf("Build(nil) = %q", got)
	}
}

func TestStrip(t *testing.T) {
	tmpl := &Template{CommentChar: "#"}

	tests := []struct {
		name   string
		edited string
		want   string
	}{
		{"untouched template", "\n# header\n#\n# Changes to be committed:\n#\t.bashrc\n", ""},
		{"empty", "", ""},
		{"message", "fix typo\n# header\n", "fix typo"},
		{"body kept", "subject\n\nbody line  \n# comment\n", "subject\n\nbody line"},
		{"indented hash kept", "subject\n  # not a comment\n", "subject\n  # not a comment"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tmpl.Strip(tt.edited); got != tt.want {
				t.Errorf("Strip() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildThenStrip(t *testing.T) {
	tmpl, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	buffer := "update aliases" + tmpl.Build([]string{".bashrc"})

	if got := tmpl.Strip(buffer); got != "update aliases" {
		t.Errorf("Strip(Build()) = %q", got)
	}
}
