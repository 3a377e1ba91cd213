package git

import (
	"errors"
	"fmt"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"go.uber.org/zap"
)

// Sentinel errors returned by Repo operations.
var (
	ErrStoreNotFound = errors.New("store not found")
	ErrStoreExists   = errors.New("store already exists")
	ErrNoHistory     = errors.New("store has no history")
	ErrNoIdentity    = errors.New("no identity configured")
)

// Repo is a bare store bound to a work-tree.
type Repo struct {
	store string
	home  string
	repo  *gogit.Repository
	log   *zap.Logger
}

// Entry is a single history entry.
type Entry struct {
	ID      string
	Author  string
	Email   string
	When    time.Time
	Message string
}

// Open opens the bare store at store and binds its work-tree to home.
// Returns an error wrapping ErrStoreNotFound when no store exists there.
func Open(store, home string, logger *zap.Logger) (*Repo, error) {
	repo, err := gogit.PlainOpen(store)
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", ErrStoreNotFound, store)
		}
		return nil, fmt.Errorf("opening store %s: %w", store, err)
	}
	return newRepo(store, home, repo, logger), nil
}

// Init creates a bare store at store and binds its work-tree to home.
// Returns an error wrapping ErrStoreExists when a store is already there.
func Init(store, home string, logger *zap.Logger) (*Repo, error) {
	repo, err := gogit.PlainInit(store, true)
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryAlreadyExists) {
			return nil, fmt.Errorf("%w: %s", ErrStoreExists, store)
		}
		return nil, fmt.Errorf("initializing store %s: %w", store, err)
	}
	return newRepo(store, home, repo, logger), nil
}

func newRepo(store, home string, repo *gogit.Repository, logger *zap.Logger) *Repo {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repo{
		store: store,
		home:  home,
		repo:  repo,
		log:   logger.With(zap.String("store", store)),
	}
}

// Store returns the store location.
func (r *Repo) Store() string {
	return r.store
}

// Home returns the bound work-tree.
func (r *Repo) Home() string {
	return r.home
}

// Head returns the commit hash HEAD resolves to.
// Returns ErrNoHistory when HEAD does not resolve yet.
func (r *Repo) Head() (string, error) {
	ref, err := r.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return "", ErrNoHistory
		}
		return "", fmt.Errorf("resolving HEAD: %w", err)
	}
	return ref.Hash().String(), nil
}

// HasHistory reports whether HEAD resolves to a commit.
func (r *Repo) HasHistory() (bool, error) {
	_, err := r.Head()
	if errors.Is(err, ErrNoHistory) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// LastEntry returns the entry HEAD points at.
func (r *Repo) LastEntry() (Entry, error) {
	head, err := r.Head()
	if err != nil {
		return Entry{}, err
	}

	commit, err := r.repo.CommitObject(plumbing.NewHash(head))
	if err != nil {
		return Entry{}, fmt.Errorf("reading commit %s: %w", head, err)
	}

	return Entry{
		ID:      commit.Hash.String(),
		Author:  commit.Author.Name,
		Email:   commit.Author.Email,
		When:    commit.Author.When,
		Message: commit.Message,
	}, nil
}

// Parents returns the parent hashes of the commit with the given hash.
func (r *Repo) Parents(hash string) ([]string, error) {
	commit, err := r.repo.CommitObject(plumbing.NewHash(hash))
	if err != nil {
		return nil, fmt.Errorf("reading commit %s: %w", hash, err)
	}
	parents := make([]string, 0, len(commit.ParentHashes))
	for _, parent := range commit.ParentHashes {
		parents = append(parents, parent.String())
	}
	return parents, nil
}
