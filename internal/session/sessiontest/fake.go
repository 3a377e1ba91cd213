// Package sessiontest provides in-memory fakes of the session collaborators.
package sessiontest

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/gorewood/git-home/internal/git"
	"github.com/gorewood/git-home/internal/session"
)

// Commit is a history entry recorded by Engine.
type Commit struct {
	Hash    string
	Parent  string
	Message string
}

// Engine is an in-memory store. Modified holds work-tree changes and Staged
// holds index changes.
type Engine struct {
	StoreDir string
	HomeDir  string

	Modified []string
	Staged   []string
	Commits  []Commit

	NoIdentity bool
	// StageErr fails any Stage call that includes the named path.
	StageErr map[string]error
	// Err fails every call of the named method.
	Err map[string]error

	StageCalls [][]string
}

var _ session.Engine = (*Engine)(nil)

func (e *Engine) fail(method string) error {
	if e.Err == nil {
		return nil
	}
	return e.Err[method]
}

// Stage implements session.Engine.
func (e *Engine) Stage(_ context.Context, paths []string) error {
	if err := e.fail("Stage"); err != nil {
		return err
	}
	e.StageCalls = append(e.StageCalls, slices.Clone(paths))
	for _, path := range paths {
		if err, ok := e.StageErr[path]; ok {
			return err
		}
	}
	for _, path := range paths {
		if !slices.Contains(e.Staged, path) {
			e.Staged = append(e.Staged, path)
		}
		e.Modified = slices.DeleteFunc(e.Modified, func(m string) bool { return m == path })
	}
	return nil
}

// StageAllModified implements session.Engine.
func (e *Engine) StageAllModified(ctx context.Context) ([]string, error) {
	if err := e.fail("StageAllModified"); err != nil {
		return nil, err
	}
	modified := slices.Clone(e.Modified)
	if len(modified) == 0 {
		return nil, nil
	}
	if err := e.Stage(ctx, modified); err != nil {
		return nil, err
	}
	return modified, nil
}

// Status implements session.Engine.
func (e *Engine) Status(_ context.Context, scope git.Scope) ([]string, error) {
	if err := e.fail("Status"); err != nil {
		return nil, err
	}
	if scope == git.ScopeIndex {
		return slices.Clone(e.Staged), nil
	}
	return slices.Clone(e.Modified), nil
}

// Head implements session.Engine.
func (e *Engine) Head() (string, error) {
	if err := e.fail("Head"); err != nil {
		return "", err
	}
	if len(e.Commits) == 0 {
		return "", git.ErrNoHistory
	}
	return e.Commits[len(e.Commits)-1].Hash, nil
}

// HasHistory implements session.Engine.
func (e *Engine) HasHistory() (bool, error) {
	if err := e.fail("HasHistory"); err != nil {
		return false, err
	}
	return len(e.Commits) > 0, nil
}

// Commit implements session.Engine. A parent that is not the current HEAD fails.
func (e *Engine) Commit(_ context.Context, message, parent string) (string, error) {
	if err := e.fail("Commit"); err != nil {
		return "", err
	}
	if e.NoIdentity {
		return "", git.ErrNoIdentity
	}
	head, err := e.Head()
	if err != nil && !errors.Is(err, git.ErrNoHistory) {
		return "", err
	}
	if parent != head {
		return "", fmt.Errorf("HEAD moved: expected %q, found %q", parent, head)
	}
	hash := fmt.Sprintf("%040x", len(e.Commits)+1)
	e.Commits = append(e.Commits, Commit{Hash: hash, Parent: parent, Message: message})
	e.Staged = nil
	return hash, nil
}

// EntryTime is the timestamp of every entry returned by LastEntry.
var EntryTime = time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC)

// LastEntry implements session.Engine.
func (e *Engine) LastEntry() (git.Entry, error) {
	if err := e.fail("LastEntry"); err != nil {
		return git.Entry{}, err
	}
	if len(e.Commits) == 0 {
		return git.Entry{}, git.ErrNoHistory
	}
	last := e.Commits[len(e.Commits)-1]
	return git.Entry{
		ID:      last.Hash,
		Author:  "Test User",
		Email:   "test@example.com",
		When:    EntryTime,
		Message: last.Message,
	}, nil
}

// Store implements session.Engine.
func (e *Engine) Store() string { return e.StoreDir }

// Home implements session.Engine.
func (e *Engine) Home() string { return e.HomeDir }

// Opener hands out Engines keyed by store location.
type Opener struct {
	Stores  map[string]*Engine
	OpenErr error
	InitErr error
}

var _ session.Opener = (*Opener)(nil)

// NewOpener returns an Opener with no stores.
func NewOpener() *Opener {
	return &Opener{Stores: map[string]*Engine{}}
}

// Add registers an existing store.
func (o *Opener) Add(engine *Engine) *Engine {
	o.Stores[engine.StoreDir] = engine
	return engine
}

// Open implements session.Opener.
func (o *Opener) Open(store, _ string) (session.Engine, error) {
	if o.OpenErr != nil {
		return nil, o.OpenErr
	}
	engine, ok := o.Stores[store]
	if !ok {
		return nil, fmt.Errorf("%w: %s", git.ErrStoreNotFound, store)
	}
	return engine, nil
}

// Init implements session.Opener.
func (o *Opener) Init(store, home string) (session.Engine, error) {
	if o.InitErr != nil {
		return nil, o.InitErr
	}
	if _, ok := o.Stores[store]; ok {
		return nil, fmt.Errorf("%w: %s", git.ErrStoreExists, store)
	}
	engine := &Engine{StoreDir: store, HomeDir: home}
	o.Stores[store] = engine
	return engine, nil
}

// Confirmer replays canned answers and records the questions asked.
type Confirmer struct {
	Answers   []bool
	Err       error
	Questions []string
}

// Confirm implements session.Confirmer. It answers no once Answers runs out.
func (c *Confirmer) Confirm(question string) (bool, error) {
	c.Questions = append(c.Questions, question)
	if c.Err != nil {
		return false, c.Err
	}
	if len(c.Answers) == 0 {
		return false, nil
	}
	answer := c.Answers[0]
	c.Answers = c.Answers[1:]
	return answer, nil
}
