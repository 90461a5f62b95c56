package commandport

import (
	"io"

	pipeentities "github.com/chitacloud/pipefile/ports/pipe/entities"
)

//go:generate mockgen -source=command_port.go -destination=../../mocks/mock_command_port.go -package=mocks

// CommandPort defines the interface for the child side of a pipe run
type CommandPort interface {
	// Start wires the pipe and redirections, resolves the program and starts it
	Start() error

	// Wait blocks until the command is reaped and returns its exit code
	Wait() (int, error)

	// Stop kills a running command and reaps it
	Stop() error

	// GetStdin returns the parent's write end of the pipe
	GetStdin() io.WriteCloser

	// GetPath returns the resolved program path, empty before Start
	GetPath() string

	// IsRunning returns true if the command was started and not yet reaped
	IsRunning() bool
}

// CommandPortFactory creates instances of CommandPort
type CommandPortFactory interface {
	// NewCommandPort creates a new command port for the given command and redirection
	NewCommandPort(spec pipeentities.CommandSpec, redirect pipeentities.Redirection) (CommandPort, error)
}
