package commitmsg

import (
	"embed"
	"fmt"
)

//go:embed templates/*.md
var builtinFS embed.FS

// loadBuiltin loads a built-in template by name.
func loadBuiltin(name string) (*Template, error) {
	path := "templates/" + name + ".md"
	data, err := builtinFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading builtin template %s: %w", path, err)
	}
	return parseTemplate(string(data))
}
