package pipeentities

import (
	"strings"

	"github.com/chitacloud/pipefile/internal/pipeerrors"
)

// DefaultChunkSize is the number of bytes the parent moves per read/write.
const DefaultChunkSize = 256

// StdinSource selects what the child reads as its standard input.
type StdinSource string

const (
	// StdinPipe feeds the child through the pipe the parent streams the input into.
	StdinPipe StdinSource = "pipe"
	// StdinFile redirects the child's stdin to the input file on top of the pipe.
	StdinFile StdinSource = "file"
)

// Valid reports whether s is a known stdin source.
func (s StdinSource) Valid() bool {
	return s == StdinPipe || s == StdinFile
}

// Invocation holds the three positional arguments of the CLI
type Invocation struct {
	InputPath  string
	Command    string
	OutputPath string
}

// CommandSpec is a tokenized command string. Name is the program to resolve,
// Args are passed after it.
type CommandSpec struct {
	Name string
	Args []string
}

// Argv returns the argument vector for the given program path.
func (c CommandSpec) Argv(path string) []string {
	argv := make([]string, 0, len(c.Args)+1)
	argv = append(argv, path)
	return append(argv, c.Args...)
}

// String joins the tokens back with single spaces.
func (c CommandSpec) String() string {
	return strings.Join(c.Argv(c.Name), " ")
}

// Redirection names the files the child's stdin and stdout are bound to.
// An empty path leaves that stream untouched.
type Redirection struct {
	Input  string
	Output string
}

// ParseCommand splits a command string on whitespace. No quoting or escaping
// is interpreted.
func ParseCommand(command string) (CommandSpec, error) {
	tokens := strings.Fields(command)
	if len(tokens) == 0 {
		return CommandSpec{}, pipeerrors.Usage("command string is empty")
	}

	return CommandSpec{
		Name: tokens[0],
		Args: tokens[1:],
	}, nil
}

// RedirectionFor builds the child's redirection for an invocation.
func RedirectionFor(inv Invocation, source StdinSource) Redirection {
	r := Redirection{Output: inv.OutputPath}
	if source == StdinFile {
		r.Input = inv.InputPath
	}
	return r
}
