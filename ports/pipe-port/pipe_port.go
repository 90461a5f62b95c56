package pipeport

import (
	commandport "github.com/chitacloud/pipefile/ports/command-port"
)

//go:generate mockgen -source=pipe_port.go -destination=../../mocks/mock_pipe_port.go -package=mocks

// PipeRunner defines the port interface for the parent side of a pipe run
type PipeRunner interface {
	// Run streams the input file into the command and returns its exit code
	Run() (int, error)

	// Close releases every descriptor still open and stops a running command
	Close() error

	// GetChunkSize returns the number of bytes moved per read/write
	GetChunkSize() int
}

// PipeRunnerFactory creates instances of PipeRunner
type PipeRunnerFactory interface {
	// NewPipeRunner opens the input file and starts the command port
	NewPipeRunner(inputPath string, chunkSize int, commandPort commandport.CommandPort) (PipeRunner, error)
}
