// Package workflow executes parsed git-home commands against the store.
//
// The Orchestrator opens a fresh session for each command that needs the
// store, runs the sequence of store operations for it, and hands any
// forwarded tokens to the pass-through executor once the local command has
// succeeded.
package workflow

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/gorewood/git-home/internal/command"
	"github.com/gorewood/git-home/internal/config"
	"github.com/gorewood/git-home/internal/output"
	"github.com/gorewood/git-home/internal/session"
)

// MessageEditor collects a commit message from the user.
type MessageEditor interface {
	Edit(ctx context.Context, initial string) (string, error)
}

// Forwarder runs raw git arguments against the store.
type Forwarder interface {
	Forward(ctx context.Context, store, home string, tokens []string) error
}

// Orchestrator dispatches commands.
type Orchestrator struct {
	Env       config.Env
	Printer   *output.Printer
	Opener    session.Opener
	Confirmer session.Confirmer
	Editor    MessageEditor
	Forwarder Forwarder
	// ConfigDir holds user templates; empty means built-ins only.
	ConfigDir string
	// Location is used to render timestamps; nil means time.Local.
	Location *time.Location
	Logger   *zap.Logger
}

// Run executes cmd. Failures are returned as *output.ExitError values
// carrying the process exit code.
func (o *Orchestrator) Run(ctx context.Context, cmd command.Command) error {
	o.logger().Debug("dispatch", zap.String("command", command.Name(cmd)))

	switch c := cmd.(type) {
	case command.Add:
		return o.add(ctx, c)
	case command.Init:
		return o.initStore()
	case command.Status:
		return o.status(ctx, c)
	case command.Commit:
		return o.commit(ctx, c)
	case command.Log:
		return o.showLog()
	case command.Help:
		o.Printer.Print("%s", o.usage())
		return nil
	case command.None:
		return output.NewUsageError("", o.usage())
	case command.Passthrough:
		return o.passthrough(ctx, c)
	default:
		return fmt.Errorf("unhandled command %T", cmd)
	}
}

func (o *Orchestrator) passthrough(ctx context.Context, c command.Passthrough) error {
	if c.Prefix != nil {
		if _, nested := c.Prefix.(command.Passthrough); nested {
			o.Printer.Print("%s", o.usage())
		} else if err := o.Run(ctx, c.Prefix); err != nil {
			return err
		}
	}

	store, home, err := o.locations()
	if err != nil {
		return err
	}
	return o.Forwarder.Forward(ctx, store, home, c.Tokens)
}

func (o *Orchestrator) usage() string {
	return command.Usage(o.Env.StoreDirDisplay())
}

func (o *Orchestrator) locations() (store, home string, err error) {
	home, err = o.Env.HomeDir()
	if err != nil {
		return "", "", err
	}
	store, err = o.Env.StoreDir()
	if err != nil {
		return "", "", err
	}
	return store, home, nil
}

func (o *Orchestrator) options() (session.Options, error) {
	store, home, err := o.locations()
	if err != nil {
		return session.Options{}, err
	}
	return session.Options{
		Store:     store,
		Home:      home,
		Opener:    o.Opener,
		Confirmer: o.Confirmer,
		Logger:    o.logger(),
	}, nil
}

// open opens the store, creating it after confirmation if needed.
func (o *Orchestrator) open() (*session.Session, error) {
	opts, err := o.options()
	if err != nil {
		return nil, err
	}
	s, err := session.Open(opts)
	if err != nil {
		return nil, err
	}
	if s.Created() {
		o.Printer.Notice("Created git home repo: %s.", s.Store())
	}
	return s, nil
}

func (o *Orchestrator) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o *Orchestrator) location() *time.Location {
	if o.Location == nil {
		return time.Local
	}
	return o.Location
}
