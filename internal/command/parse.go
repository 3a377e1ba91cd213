package command

import (
	"strings"

	"github.com/gorewood/git-home/internal/output"
)

// Separator splits local arguments from tokens forwarded to git.
const Separator = "--"

// PathResolver canonicalizes add targets.
type PathResolver interface {
	Canonicalize(path string) (string, error)
}

// PathResolverFunc adapts a function to PathResolver.
type PathResolverFunc func(path string) (string, error)

// Canonicalize calls f(path).
func (f PathResolverFunc) Canonicalize(path string) (string, error) {
	return f(path)
}

// Parser converts argument vectors into commands.
type Parser struct {
	// Paths resolves add targets. It is only consulted by add.
	Paths PathResolver
	// ColorTerm is the value of $COLORTERM.
	ColorTerm string
}

// Parse consumes the arguments that follow the binary (and the "home" git
// alias). Usage errors carry the command-specific usage text.
func (p Parser) Parse(args []string) (Command, error) {
	primary, forward := SplitPassthrough(args)

	cmd, err := p.parsePrimary(primary)
	if err != nil {
		return nil, err
	}

	if forward == nil {
		return cmd, nil
	}
	if _, ok := cmd.(None); ok {
		return Passthrough{Tokens: forward}, nil
	}
	return Passthrough{Prefix: cmd, Tokens: forward}, nil
}

// SplitPassthrough splits args at the first Separator. forward is nil when
// there is no separator or nothing follows it.
func SplitPassthrough(args []string) (primary, forward []string) {
	for i, arg := range args {
		if arg != Separator {
			continue
		}
		if rest := args[i+1:]; len(rest) > 0 {
			forward = append([]string(nil), rest...)
		}
		return args[:i], forward
	}
	return args, nil
}

func (p Parser) parsePrimary(args []string) (Command, error) {
	if len(args) == 0 {
		return None{}, nil
	}

	keyword, rest := args[0], args[1:]
	switch keyword {
	case "add":
		return p.parseAdd(rest)
	case "init":
		if len(rest) > 0 {
			return nil, output.NewUsageError("git home init takes no arguments", InitUsage)
		}
		return Init{}, nil
	case "status":
		return Status{Color: output.SupportsColor(p.ColorTerm)}, nil
	case "commit":
		return parseCommit(rest)
	case "log":
		return Log{}, nil
	case "--help":
		return Help{}, nil
	default:
		return None{}, nil
	}
}

func (p Parser) parseAdd(args []string) (Command, error) {
	if len(args) == 0 {
		return nil, output.NewUsageError("nothing specified, nothing added", AddUsage)
	}

	if isUpdateFlag(args[0]) {
		if len(args) > 1 {
			return nil, output.NewUsageError("git home add "+args[0]+" takes no paths", AddUsage)
		}
		return Add{Mode: AddAll}, nil
	}

	paths := make([]string, 0, len(args))
	for _, arg := range args {
		path, err := p.Paths.Canonicalize(arg)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return Add{Mode: AddNormal, Paths: paths}, nil
}

func isUpdateFlag(arg string) bool {
	return arg == "-u" || strings.HasPrefix(arg, "--update")
}

func parseCommit(args []string) (Command, error) {
	if len(args) == 0 {
		return Commit{}, nil
	}

	var message string
	var consumed int
	switch first := args[0]; {
	case first == "-m":
		if len(args) < 2 {
			return nil, output.NewUsageError("switch `m' requires a value", CommitUsage)
		}
		message, consumed = args[1], 2
	case strings.HasPrefix(first, "--message="):
		message, consumed = strings.TrimPrefix(first, "--message="), 1
	case strings.HasPrefix(first, "-m"):
		message, consumed = strings.TrimPrefix(first, "-m"), 1
	default:
		return nil, output.NewUsageError("unknown commit option "+first, CommitUsage)
	}

	if len(args) > consumed {
		return nil, output.NewUsageError("git home commit takes a single message", CommitUsage)
	}
	return Commit{Message: &message}, nil
}
