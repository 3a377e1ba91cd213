package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/gorewood/git-home/internal/config"
	homemcp "github.com/gorewood/git-home/internal/mcp"
	"github.com/gorewood/git-home/internal/session"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run git-home as a Model Context Protocol (MCP) server over stdio.

The server exposes read-only views of the dotfiles store. It never prompts
and never creates the store; run "git home init" first.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "git-home": {
        "command": "git-home",
        "args": ["serve"]
      }
    }
  }

Available tools: status, log`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loadEnvFiles()
			env := config.Load(nil)
			logger := newLogger(cmd, env)
			defer logger.Sync() //nolint:errcheck // best-effort flush of debug log

			open := func() (*session.Session, error) {
				home, err := env.HomeDir()
				if err != nil {
					return nil, err
				}
				store, err := env.StoreDir()
				if err != nil {
					return nil, err
				}
				return session.Open(session.Options{
					Store:  store,
					Home:   home,
					Opener: session.GitOpener{Logger: logger},
					Logger: logger,
				})
			}

			server := homemcp.NewServer(buildVersion(), open)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
