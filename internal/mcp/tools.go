package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/git-home/internal/git"
)

// --- Status tool ---

// StatusInput is the input for the status tool (no parameters needed).
type StatusInput struct{}

// StatusOutput is the output for the status tool.
type StatusOutput struct {
	Store    string   `json:"store"              jsonschema:"location of the bare store"`
	Unstaged []string `json:"unstaged,omitempty" jsonschema:"tracked files modified in the home directory but not staged"`
	Staged   []string `json:"staged,omitempty"   jsonschema:"files staged for the next commit"`
	UpToDate bool     `json:"up_to_date"         jsonschema:"true when nothing is modified or staged"`
}

func handleStatus(open OpenFunc) mcp.ToolHandlerFor[StatusInput, StatusOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ StatusInput) (*mcp.CallToolResult, StatusOutput, error) {
		s, err := open()
		if err != nil {
			return nil, StatusOutput{}, fmt.Errorf("opening store: %w", err)
		}

		unstaged, err := s.Status(ctx, git.ScopeWorktree)
		if err != nil {
			return nil, StatusOutput{}, err
		}
		staged, err := s.Status(ctx, git.ScopeIndex)
		if err != nil {
			return nil, StatusOutput{}, err
		}

		return nil, StatusOutput{
			Store:    s.Store(),
			Unstaged: unstaged,
			Staged:   staged,
			UpToDate: len(unstaged) == 0 && len(staged) == 0,
		}, nil
	}
}

// --- Log tool ---

// LogInput is the input for the log tool (no parameters needed).
type LogInput struct{}

// LogOutput is the output for the log tool.
type LogOutput struct {
	HasHistory bool   `json:"has_history"         jsonschema:"false when the store has no commits yet"`
	ID         string `json:"id,omitempty"        jsonschema:"full commit SHA"`
	Author     string `json:"author,omitempty"    jsonschema:"author name"`
	Email      string `json:"email,omitempty"     jsonschema:"author email"`
	Timestamp  string `json:"timestamp,omitempty" jsonschema:"author timestamp (RFC3339)"`
	Message    string `json:"message,omitempty"   jsonschema:"commit message"`
}

func handleLog(open OpenFunc) mcp.ToolHandlerFor[LogInput, LogOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ LogInput) (*mcp.CallToolResult, LogOutput, error) {
		s, err := open()
		if err != nil {
			return nil, LogOutput{}, fmt.Errorf("opening store: %w", err)
		}

		entry, err := s.LastEntry()
		if errors.Is(err, git.ErrNoHistory) {
			return nil, LogOutput{HasHistory: false}, nil
		}
		if err != nil {
			return nil, LogOutput{}, err
		}

		return nil, LogOutput{
			HasHistory: true,
			ID:         entry.ID,
			Author:     entry.Author,
			Email:      entry.Email,
			Timestamp:  entry.When.Format(time.RFC3339),
			Message:    entry.Message,
		}, nil
	}
}
