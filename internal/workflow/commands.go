package workflow

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/gorewood/git-home/internal/command"
	"github.com/gorewood/git-home/internal/commitmsg"
	"github.com/gorewood/git-home/internal/git"
	"github.com/gorewood/git-home/internal/output"
	"github.com/gorewood/git-home/internal/session"
)

func (o *Orchestrator) add(ctx context.Context, c command.Add) error {
	s, err := o.open()
	if err != nil {
		return err
	}

	if c.Mode == command.AddAll {
		staged, err := s.StageAllModified(ctx)
		if err != nil {
			return err
		}
		o.logger().Debug("staged modified files", zap.Strings("paths", staged))
		return nil
	}
	return s.Stage(ctx, c.Paths)
}

func (o *Orchestrator) initStore() error {
	opts, err := o.options()
	if err != nil {
		return err
	}

	// Refuse before asking when the store is already there.
	if _, err := opts.Opener.Open(opts.Store, opts.Home); err == nil {
		return output.NewBackendErrorWithCause(
			"could not create git home repo: one already exists at "+opts.Store, git.ErrStoreExists)
	}

	ok, err := o.Confirmer.Confirm(fmt.Sprintf("Create git home repo at %s?", opts.Store))
	if err != nil {
		return output.NewAbortedError(err.Error(), output.ExitAborted)
	}
	if !ok {
		o.Printer.Notice("Not creating git home repo.")
		return nil
	}

	s, err := session.Create(opts)
	if err != nil {
		return err
	}
	o.Printer.Notice("Created git home repo: %s.", s.Store())
	return nil
}

func (o *Orchestrator) status(ctx context.Context, c command.Status) error {
	s, err := o.open()
	if err != nil {
		return err
	}

	unstaged, err := s.Status(ctx, git.ScopeWorktree)
	if err != nil {
		return err
	}
	staged, err := s.Status(ctx, git.ScopeIndex)
	if err != nil {
		return err
	}

	renderStatus(o.Printer.WithColor(c.Color), unstaged, staged)
	return nil
}

func (o *Orchestrator) commit(ctx context.Context, c command.Commit) error {
	s, err := o.open()
	if err != nil {
		return err
	}

	var message string
	if c.NeedsEditor() {
		message, err = o.editMessage(ctx, s)
		if err != nil {
			return err
		}
		if message == "" {
			return output.NewAbortedError("Commit aborted", output.ExitAborted)
		}
	} else {
		message = strings.TrimSpace(*c.Message)
		if message == "" {
			return output.NewAbortedError("Aborting commit due to empty commit message.", output.ExitAborted)
		}
	}

	hasHistory, err := s.HasHistory()
	if err != nil {
		return err
	}
	hash, err := s.Commit(ctx, message, !hasHistory)
	if err != nil {
		return err
	}

	subject, _, _ := strings.Cut(message, "\n")
	if !hasHistory {
		o.Printer.Println(fmt.Sprintf("[root-commit %s] %s", shortHash(hash), subject))
	} else {
		o.Printer.Println(fmt.Sprintf("[%s] %s", shortHash(hash), subject))
	}
	return nil
}

// editMessage opens the editor on the commit template and returns the
// stripped result.
func (o *Orchestrator) editMessage(ctx context.Context, s *session.Session) (string, error) {
	staged, err := s.Status(ctx, git.ScopeIndex)
	if err != nil {
		return "", err
	}

	tmpl, err := commitmsg.Load(o.ConfigDir)
	if err != nil {
		return "", output.NewBackendErrorWithCause("could not load commit template: "+err.Error(), err)
	}
	o.logger().Debug("commit template", zap.String("source", tmpl.Source))

	edited, err := o.Editor.Edit(ctx, tmpl.Build(staged))
	if err != nil {
		return "", err
	}
	return tmpl.Strip(edited), nil
}

func (o *Orchestrator) showLog() error {
	s, err := o.open()
	if err != nil {
		return err
	}

	entry, err := s.LastEntry()
	if err != nil {
		return err
	}
	renderEntry(o.Printer, entry, o.location())
	return nil
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
