// Package config resolves the environment contract of the git-home CLI.
package config

import (
	"os"
	"path/filepath"

	"github.com/gorewood/git-home/internal/output"
)

// Environment variables read by git-home.
const (
	StoreDirVar  = "GIT_HOME_DIR"
	HomeVar      = "HOME"
	UserVar      = "USER"
	DebugLogVar  = "GIT_HOME_DEBUG_LOG"
	ConfigDirVar = "GIT_HOME_CONFIG_HOME"
)

// DefaultStoreDir is the store location relative to $HOME when GIT_HOME_DIR is unset.
const DefaultStoreDir = ".config/git_home"

// LookupFunc matches the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Env is a snapshot of the environment values git-home depends on.
// Required values are validated lazily, when an operation needs them.
type Env struct {
	Home          string
	User          string
	StoreOverride string
	ColorTerm     string
	DebugLog      string
}

// Load reads the environment through lookup. A nil lookup uses os.LookupEnv.
func Load(lookup LookupFunc) Env {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	get := func(key string) string {
		value, _ := lookup(key)
		return value
	}
	return Env{
		Home:          get(HomeVar),
		User:          get(UserVar),
		StoreOverride: get(StoreDirVar),
		ColorTerm:     get(output.ColorTermVar),
		DebugLog:      get(DebugLogVar),
	}
}

// HomeDir returns $HOME, or an environment error when it is unset.
func (e Env) HomeDir() (string, error) {
	if e.Home == "" {
		return "", output.NewEnvironmentError("could not get value of $HOME")
	}
	return e.Home, nil
}

// UserName returns $USER, or an environment error when it is unset.
func (e Env) UserName() (string, error) {
	if e.User == "" {
		return "", output.NewEnvironmentError("$USER not set")
	}
	return e.User, nil
}

// StoreDir returns the location of the bare store.
//
// Resolution:
//   - $GIT_HOME_DIR if set
//   - $HOME/.config/git_home otherwise
func (e Env) StoreDir() (string, error) {
	if e.StoreOverride != "" {
		return e.StoreOverride, nil
	}
	home, err := e.HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultStoreDir), nil
}

// StoreDirDisplay describes the store location for help output.
func (e Env) StoreDirDisplay() string {
	if e.StoreOverride != "" {
		return e.StoreOverride
	}
	return "$HOME/" + DefaultStoreDir + " (default value)"
}

// Dir returns the git-home configuration directory (env file, templates).
//
// Resolution:
//   - $GIT_HOME_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/git-home if set
//   - $HOME/.config/git-home
//
// Returns "" when none can be determined.
func Dir(lookup LookupFunc) string {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if dir, _ := lookup(ConfigDirVar); dir != "" {
		return dir
	}
	if xdg, _ := lookup("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "git-home")
	}
	if home, _ := lookup(HomeVar); home != "" {
		return filepath.Join(home, ".config", "git-home")
	}
	return ""
}
