// Package session manages one invocation's handle on the git-home store.
//
// A Session is opened fresh for every command. Opening a missing store asks
// for confirmation and creates it; every engine failure is returned as an
// output.ExitError with the backend exit code.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/gorewood/git-home/internal/git"
	"github.com/gorewood/git-home/internal/output"
)

// InitHint is shown when the user declines to create the store.
const InitHint = "You can create a new repository at any time by running 'git home init'."

// Confirmer asks a yes/no question.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// Options locate the store and supply its collaborators.
type Options struct {
	Store  string
	Home   string
	Opener Opener
	// Confirmer is asked before creating a missing store. When nil, a
	// missing store is an error.
	Confirmer Confirmer
	Logger    *zap.Logger
}

// Session is an open store bound to the home directory.
type Session struct {
	engine  Engine
	created bool
	log     *zap.Logger
}

// Open opens the store, creating it after confirmation when it is absent.
func Open(opts Options) (*Session, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	engine, err := opts.Opener.Open(opts.Store, opts.Home)
	if err == nil {
		logger.Debug("opened store", zap.String("store", opts.Store))
		return &Session{engine: engine, log: logger}, nil
	}
	if !errors.Is(err, git.ErrStoreNotFound) {
		return nil, output.NewBackendErrorWithCause("could not open git home repo at "+opts.Store, err)
	}

	if opts.Confirmer == nil {
		return nil, output.NewBackendErrorWithCause("git home repo doesn't exist at "+opts.Store, err)
	}
	ok, err := opts.Confirmer.Confirm(fmt.Sprintf("Git home repo doesn't exist, create one now at %s?", opts.Store))
	if err != nil {
		return nil, output.NewAbortedError(err.Error(), output.ExitAborted)
	}
	if !ok {
		return nil, output.NewAbortedError(InitHint, output.ExitAborted)
	}

	s, err := Create(opts)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Create initializes a new store. An existing store is an error.
func Create(opts Options) (*Session, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	engine, err := opts.Opener.Init(opts.Store, opts.Home)
	if err != nil {
		return nil, output.NewBackendErrorWithCause(
			fmt.Sprintf("could not create git home repo at %s: %v", opts.Store, err), err)
	}
	logger.Debug("created store", zap.String("store", opts.Store))
	return &Session{engine: engine, created: true, log: logger}, nil
}

// New wraps an already open engine.
func New(engine Engine, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{engine: engine, log: logger}
}

// Created reports whether this session created the store.
func (s *Session) Created() bool {
	return s.created
}

// Store returns the store location.
func (s *Session) Store() string {
	return s.engine.Store()
}

// Home returns the bound work-tree.
func (s *Session) Home() string {
	return s.engine.Home()
}

// Stage adds paths to the index and writes it.
func (s *Session) Stage(ctx context.Context, paths []string) error {
	if err := s.engine.Stage(ctx, paths); err != nil {
		return backendError("could not add "+strings.Join(paths, ", ")+" to index", err)
	}
	return nil
}

// StageAllModified stages every modified tracked file and returns their paths.
func (s *Session) StageAllModified(ctx context.Context) ([]string, error) {
	paths, err := s.engine.StageAllModified(ctx)
	if err != nil {
		return nil, backendError("could not stage modified files", err)
	}
	return paths, nil
}

// Status returns the paths changed in scope. Untracked files are never included.
func (s *Session) Status(ctx context.Context, scope git.Scope) ([]string, error) {
	paths, err := s.engine.Status(ctx, scope)
	if err != nil {
		return nil, backendError("could not get repo status", err)
	}
	return paths, nil
}

// HasHistory reports whether HEAD resolves.
func (s *Session) HasHistory() (bool, error) {
	has, err := s.engine.HasHistory()
	if err != nil {
		return false, backendError("could not resolve HEAD", err)
	}
	return has, nil
}

// Commit records the staged tree. With allowEmptyParents the commit is a
// root commit; otherwise HEAD becomes its only parent.
func (s *Session) Commit(ctx context.Context, message string, allowEmptyParents bool) (string, error) {
	var parent string
	if !allowEmptyParents {
		head, err := s.engine.Head()
		if err != nil {
			return "", backendError("could not get parent commit", err)
		}
		parent = head
	}

	hash, err := s.engine.Commit(ctx, message, parent)
	if err != nil {
		if errors.Is(err, git.ErrNoIdentity) {
			return "", output.NewBackendErrorWithCause(
				"unable to create a commit signature: 'user.name' and 'user.email' are not set", err)
		}
		return "", backendError("could not create commit", err)
	}
	s.log.Debug("commit", zap.String("hash", hash), zap.String("parent", parent))
	return hash, nil
}

// LastEntry returns the entry HEAD points at.
func (s *Session) LastEntry() (git.Entry, error) {
	entry, err := s.engine.LastEntry()
	if err != nil {
		if errors.Is(err, git.ErrNoHistory) {
			return git.Entry{}, output.NewBackendErrorWithCause("unable to get HEAD: no commits yet", err)
		}
		return git.Entry{}, backendError("unable to get commit from HEAD", err)
	}
	return entry, nil
}

func backendError(message string, err error) error {
	return output.NewBackendErrorWithCause(message+": "+err.Error(), err)
}
