// Package main provides the entry point for the git-home CLI.
//
// git runs this binary for "git home ...", passing everything after "home"
// as arguments.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gorewood/git-home/internal/command"
	"github.com/gorewood/git-home/internal/config"
	"github.com/gorewood/git-home/internal/editor"
	homelog "github.com/gorewood/git-home/internal/log"
	"github.com/gorewood/git-home/internal/output"
	"github.com/gorewood/git-home/internal/passthrough"
	"github.com/gorewood/git-home/internal/pathscope"
	"github.com/gorewood/git-home/internal/prompt"
	"github.com/gorewood/git-home/internal/session"
	"github.com/gorewood/git-home/internal/workflow"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

// exitStatus records the exit code of a failure the root command has
// already printed.
type exitStatus struct {
	code int
}

func run() int {
	status := &exitStatus{}
	cmd := newRootCmd(status)
	if err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion())); err != nil {
		return output.GetExitCode(err)
	}
	return status.code
}

// newRootCmd creates the root command. Flag parsing is disabled so the
// command grammar, including "--" forwarding, sees the raw arguments.
func newRootCmd(status *exitStatus) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "git-home [command] <args>",
		Short: "Manage dotfiles in $HOME with a bare git repository",
		Long: `git-home tracks files in your home directory with a bare git repository
stored outside of it ($GIT_HOME_DIR, default ~/.config/git_home).

Run it as "git home <command>". Commands: add, status, init, commit, log.
Anything after "--" is passed to git, bound to the store and $HOME.`,
		Version:            buildVersion(),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runHome(cmd, args); err != nil {
				newPrinter(cmd).Error(err)
				status.code = output.GetExitCode(err)
			}
			return nil
		},
	}

	cmd.AddCommand(newServeCmd())
	return cmd
}

// runHome parses args and dispatches them.
func runHome(cmd *cobra.Command, args []string) error {
	loadEnvFiles()
	env := config.Load(nil)

	logger := newLogger(cmd, env)
	defer logger.Sync() //nolint:errcheck // best-effort flush of debug log

	parser := command.Parser{Paths: pathResolver(env), ColorTerm: env.ColorTerm}
	parsed, err := parser.Parse(args)
	if err != nil {
		return err
	}
	logger.Debug("parsed", zap.Strings("args", args), zap.String("command", command.Name(parsed)))

	printer := newPrinter(cmd)
	orchestrator := &workflow.Orchestrator{
		Env:       env,
		Printer:   printer,
		Opener:    session.GitOpener{Logger: logger},
		Confirmer: prompt.New(cmd.InOrStdin(), cmd.OutOrStdout()),
		Editor:    editor.New(editor.Resolve(nil, nil)),
		Forwarder: passthrough.New(printer, logger),
		ConfigDir: config.Dir(nil),
		Logger:    logger,
	}
	return orchestrator.Run(cmd.Context(), parsed)
}

func newPrinter(cmd *cobra.Command) *output.Printer {
	out := cmd.OutOrStdout()
	return output.NewPrinter(out, output.IsTTY(out)).WithStderr(cmd.ErrOrStderr())
}

// newLogger opens the debug log named by GIT_HOME_DEBUG_LOG. A log that
// cannot be opened is reported and replaced by a no-op logger.
func newLogger(cmd *cobra.Command, env config.Env) *zap.Logger {
	logger, err := homelog.New(env.DebugLog)
	if err != nil {
		newPrinter(cmd).Notice("debug log disabled: %v", err)
		return zap.NewNop()
	}
	return logger
}

// pathResolver canonicalizes add targets against $HOME and $USER. The
// environment is only required once a path needs checking.
func pathResolver(env config.Env) command.PathResolver {
	return command.PathResolverFunc(func(path string) (string, error) {
		home, err := env.HomeDir()
		if err != nil {
			return "", err
		}
		user, err := env.UserName()
		if err != nil {
			return "", err
		}
		canonicalizer, err := pathscope.New(home, user)
		if err != nil {
			return "", err
		}
		return canonicalizer.Canonicalize(path)
	})
}

// loadEnvFiles loads <config dir>/env. Variables already set in the
// environment always take precedence.
func loadEnvFiles() {
	if dir := config.Dir(nil); dir != "" {
		_, _ = config.LoadEnvFile(filepath.Join(dir, config.EnvFileName))
	}
}
