package domain

import (
	"strings"

	"github.com/google/shlex"
	"go.trai.ch/zerr"
)

// Command is an already-tokenized command line. Internal APIs only accept
// Command values so command strings are parsed exactly once, at the boundary.
type Command struct {
	Raw  string
	Argv []string
}

// ParseCommand tokenizes a raw command string using shell-word-splitting
// rules that honor quoting. No shell metacharacter interpretation is
// performed; the result is a direct argv.
func ParseCommand(raw string) (Command, error) {
	argv, err := shlex.Split(raw)
	if err != nil {
		return Command{}, zerr.With(zerr.Wrap(err, "failed to tokenize command"), "command", raw)
	}
	if len(argv) == 0 {
		return Command{}, zerr.With(ErrEmptyCommand, "command", raw)
	}
	return Command{Raw: raw, Argv: argv}, nil
}

// NewCommand builds a Command from an explicit argv, for callers that
// construct invocations programmatically (e.g. collaborator adapters whose
// arguments contain filesystem paths).
func NewCommand(argv ...string) Command {
	return Command{Raw: strings.Join(argv, " "), Argv: argv}
}

// Name returns the executable name (the first token), or the empty string
// for a zero-value Command.
func (c Command) Name() string {
	if len(c.Argv) == 0 {
		return ""
	}
	return c.Argv[0]
}

// Args returns the positional arguments after the executable name.
func (c Command) Args() []string {
	if len(c.Argv) == 0 {
		return nil
	}
	return c.Argv[1:]
}
