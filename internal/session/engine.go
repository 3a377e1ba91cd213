package session

import (
	"context"

	"go.uber.org/zap"

	"github.com/gorewood/git-home/internal/git"
)

// Engine is the store backend a Session drives. *git.Repo implements it.
type Engine interface {
	Stage(ctx context.Context, paths []string) error
	StageAllModified(ctx context.Context) ([]string, error)
	Status(ctx context.Context, scope git.Scope) ([]string, error)
	Head() (string, error)
	HasHistory() (bool, error)
	Commit(ctx context.Context, message, parent string) (string, error)
	LastEntry() (git.Entry, error)
	Store() string
	Home() string
}

// Opener opens or creates the store at a location.
type Opener interface {
	Open(store, home string) (Engine, error)
	Init(store, home string) (Engine, error)
}

// GitOpener opens stores with the git package.
type GitOpener struct {
	Logger *zap.Logger
}

// Open implements Opener.
func (o GitOpener) Open(store, home string) (Engine, error) {
	repo, err := git.Open(store, home, o.Logger)
	if err != nil {
		return nil, err
	}
	return repo, nil
}

// Init implements Opener.
func (o GitOpener) Init(store, home string) (Engine, error) {
	repo, err := git.Init(store, home, o.Logger)
	if err != nil {
		return nil, err
	}
	return repo, nil
}
