// Package commitmsg builds the commit message template shown in the editor
// and strips it back down to the message the user wrote.
package commitmsg

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// TemplateName is the template used for commit messages.
const TemplateName = "commit"

// DefaultCommentChar marks lines removed from the edited message.
const DefaultCommentChar = "#"

// Template is a commit message template with metadata and content.
type Template struct {
	// Metadata from frontmatter
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	CommentChar string `yaml:"comment_char,omitempty"`

	// Template content (after frontmatter)
	Content string `yaml:"-"`

	// Source location for display
	Source string `yaml:"-"`
}

// Load finds the commit template.
// Resolution order: <configDir>/templates/commit.md → built-in.
// A user template with invalid frontmatter is an error, not a fallback.
func Load(configDir string) (*Template, error) {
	if configDir != "" {
		path := filepath.Join(configDir, "templates", TemplateName+".md")
		tmpl, err := loadFromPath(path)
		switch {
		case err == nil:
			tmpl.Source = path
			return tmpl, nil
		case !errors.Is(err, fs.ErrNotExist):
			return nil, err
		}
	}

	tmpl, err := loadBuiltin(TemplateName)
	if err != nil {
		return nil, err
	}
	tmpl.Source = "built-in"
	return tmpl, nil
}

// loadFromPath loads a template file.
func loadFromPath(path string) (*Template, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is built from the config dir
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}

	tmpl, err := parseTemplate(string(data))
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", path, err)
	}
	return tmpl, nil
}

// parseTemplate parses a template from raw content with YAML frontmatter.
func parseTemplate(raw string) (*Template, error) {
	frontmatter, content := splitFrontmatter(raw)

	var tmpl Template
	if frontmatter != "" {
		if err := yaml.Unmarshal([]byte(frontmatter), &tmpl); err != nil {
			return nil, fmt.Errorf("invalid frontmatter: %w", err)
		}
	}
	if tmpl.CommentChar == "" {
		tmpl.CommentChar = DefaultCommentChar
	}

	tmpl.Content = strings.TrimSpace(content)
	return &tmpl, nil
}

// splitFrontmatter separates YAML frontmatter from content.
// Frontmatter is delimited by --- at the start and end.
func splitFrontmatter(raw string) (frontmatter, content string) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "---") {
		return "", raw
	}

	rest := raw[3:]
	before, after, ok := strings.Cut(rest, "\n---")
	if !ok {
		return "", raw
	}

	return strings.TrimSpace(before), strings.TrimSpace(after)
}

// Build renders the editor buffer: a blank line for the message, the
// template content, then the staged paths as comments.
func (t *Template) Build(staged []string) string {
	c := t.CommentChar

	var b strings.Builder
	b.WriteString("\n")
	if t.Content != "" {
		b.WriteString(t.Content)
		b.WriteString("\n")
	}
	b.WriteString(c + "\n")
	if len(staged) == 0 {
		b.WriteString(c + " No changes staged.\n")
		return b.String()
	}
	b.WriteString(c + " Changes to be committed:\n")
	for _, path := range staged {
		b.WriteString(c + "\t" + path + "\n")
	}
	return b.String()
}

// Strip removes comment lines and surrounding blank space from an edited
// buffer. An empty result means the commit should be aborted.
func (t *Template) Strip(edited string) string {
	lines := strings.Split(edited, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(line, t.CommentChar) {
			continue
		}
		kept = append(kept, strings.TrimRight(line, " \t\r"))
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}
