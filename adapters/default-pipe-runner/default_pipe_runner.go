package defaultpiperunner

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"syscall"

	"github.com/chitacloud/pipefile/internal/logger"
	"github.com/chitacloud/pipefile/internal/pipeerrors"
	commandport "github.com/chitacloud/pipefile/ports/command-port"
	pipeentities "github.com/chitacloud/pipefile/ports/pipe/entities"
	pipeport "github.com/chitacloud/pipefile/ports/pipe-port"
)

var (
	_ pipeport.PipeRunner        = (*DefaultPipeRunner)(nil)
	_ pipeport.PipeRunnerFactory = (*DefaultPipeRunnerFactory)(nil)
)

// DefaultPipeRunner implements PipeRunner: it streams a file into the
// command's stdin in fixed-size chunks and reaps the command.
type DefaultPipeRunner struct {
	chunkSize   int
	input       io.ReadCloser
	commandPort commandport.CommandPort
	log         *logger.Logger
	closeOnce   sync.Once
}

// DefaultPipeRunnerFactory implements PipeRunnerFactory
type DefaultPipeRunnerFactory struct{}

// NewPipeRunner opens the input file, then starts the command. The input is
// opened first so a missing file fails before any process exists.
func (f *DefaultPipeRunnerFactory) NewPipeRunner(inputPath string, chunkSize int, commandPort commandport.CommandPort) (pipeport.PipeRunner, error) {
	if commandPort == nil {
		return nil, fmt.Errorf("command port cannot be nil")
	}

	input, err := os.Open(inputPath)
	if err != nil {
		return nil, pipeerrors.Resource("open input file", inputPath, err)
	}

	return newRunner(input, chunkSize, commandPort)
}

func newRunner(input io.ReadCloser, chunkSize int, commandPort commandport.CommandPort) (*DefaultPipeRunner, error) {
	if chunkSize <= 0 {
		chunkSize = pipeentities.DefaultChunkSize
	}

	if err := commandPort.Start(); err != nil {
		input.Close()
		return nil, err
	}

	return &DefaultPipeRunner{
		chunkSize:   chunkSize,
		input:       input,
		commandPort: commandPort,
		log:         logger.Get().WithComponent("pipe-runner"),
	}, nil
}

// GetChunkSize returns the configured chunk size
func (p *DefaultPipeRunner) GetChunkSize() int {
	return p.chunkSize
}

// Run streams the input into the pipe, closes both ends the parent owns and
// waits for the command. It returns the command's exit code, or -1 with a wait
// error when the command could not be reaped or did not exit normally.
func (p *DefaultPipeRunner) Run() (int, error) {
	p.stream()
	p.closeStreams()
	return p.commandPort.Wait()
}

// stream copies the input into the command's stdin one chunk at a time. A
// failed or empty read ends the stream; so does a failed write.
func (p *DefaultPipeRunner) stream() {
	stdin := p.commandPort.GetStdin()
	if stdin == nil {
		p.log.Warn("command has no stdin pipe; input not streamed")
		return
	}

	buf := make([]byte, p.chunkSize)
	var total, chunks int
	for {
		n, readErr := p.input.Read(buf)
		if n > 0 {
			if _, err := stdin.Write(buf[:n]); err != nil {
				if isBrokenPipe(err) {
					p.log.Debug("command stopped reading its stdin", logger.Fields(logger.FieldBytes, total))
				} else {
					p.log.WithError(err).Warn("write to command stdin failed")
				}
				return
			}
			total += n
			chunks++
		}
		if readErr != nil {
			if readErr != io.EOF {
				p.log.WithError(readErr).Warn("read from input file failed")
			}
			break
		}
		if n == 0 {
			break
		}
	}

	p.log.Debug("input streamed", logger.Fields(logger.FieldBytes, total, logger.FieldChunks, chunks))
}

// closeStreams closes the input and the pipe write end, which signals
// end-of-input to the command.
func (p *DefaultPipeRunner) closeStreams() {
	p.closeOnce.Do(func() {
		p.input.Close()
		if stdin := p.commandPort.GetStdin(); stdin != nil {
			stdin.Close()
		}
	})
}

// Close cleans up the runner resources
func (p *DefaultPipeRunner) Close() error {
	p.closeStreams()
	if p.commandPort.IsRunning() {
		return p.commandPort.Stop()
	}
	return nil
}

// isBrokenPipe reports whether a write failed because the reading end is gone.
func isBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
