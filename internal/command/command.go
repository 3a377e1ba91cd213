// Package command turns the git-home argument vector into a typed Command.
package command

// Command is a parsed invocation. The set of implementations is closed:
// Add, Init, Status, Commit, Log, Help, None and Passthrough.
type Command interface {
	command()
}

// AddMode selects how add picks the files to stage.
type AddMode int

const (
	// AddNormal stages the listed paths.
	AddNormal AddMode = iota
	// AddAll stages every modified tracked file.
	AddAll
)

func (m AddMode) String() string {
	if m == AddAll {
		return "all"
	}
	return "normal"
}

// Add stages files. Paths are canonical absolute paths and are empty only in AddAll mode.
type Add struct {
	Mode  AddMode
	Paths []string
}

// Init creates the bare store.
type Init struct{}

// Status reports unstaged and staged changes.
type Status struct {
	// Color is set when the terminal announced 24-bit color support.
	Color bool
}

// Commit records the staged tree. A nil Message means the message is
// collected from the external editor.
type Commit struct {
	Message *string
}

// NeedsEditor reports whether the message must come from the editor.
func (c Commit) NeedsEditor() bool {
	return c.Message == nil
}

// Log prints the most recent history entry.
type Log struct{}

// Help prints usage.
type Help struct{}

// None is an empty or unrecognized command.
type None struct{}

// Passthrough forwards Tokens to git after running Prefix, if any.
// The parser never nests a Passthrough inside Prefix.
type Passthrough struct {
	Prefix Command
	Tokens []string
}

func (Add) command()         {}
func (Init) command()        {}
func (Status) command()      {}
func (Commit) command()      {}
func (Log) command()         {}
func (Help) command()        {}
func (None) command()        {}
func (Passthrough) command() {}

// Name returns the keyword of a command, for logs and messages.
func Name(cmd Command) string {
	switch cmd.(type) {
	case Add:
		return "add"
	case Init:
		return "init"
	case Status:
		return "status"
	case Commit:
		return "commit"
	case Log:
		return "log"
	case Help:
		return "help"
	case Passthrough:
		return "passthrough"
	default:
		return "none"
	}
}
