// Package mcp provides a Model Context Protocol server for git-home.
// It exposes read-only views of the store as MCP tools. The server never
// prompts and never creates the store.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/git-home/internal/session"
)

// OpenFunc opens the store for one tool call.
type OpenFunc func() (*session.Session, error)

// NewServer creates an MCP server with all git-home tools registered.
func NewServer(version string, open OpenFunc) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "git-home",
		Version: version,
	}, nil)
	registerTools(server, open)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// registerTools adds all git-home tools to the server.
func registerTools(server *mcp.Server, open OpenFunc) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "status",
		Description: "List tracked dotfiles in the home directory that are modified but unstaged, and those staged for the next commit. Untracked files are never listed.",
		Annotations: readOnlyAnnotations(),
	}, handleStatus(open))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "log",
		Description: "Show the most recent commit in the git-home store: id, author, timestamp and message.",
		Annotations: readOnlyAnnotations(),
	}, handleLog(open))
}
