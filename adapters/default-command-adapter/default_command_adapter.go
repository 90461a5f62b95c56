package defaultcommandadapter

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/chitacloud/pipefile/internal/logger"
	"github.com/chitacloud/pipefile/internal/pipeerrors"
	commandport "github.com/chitacloud/pipefile/ports/command-port"
	pipeentities "github.com/chitacloud/pipefile/ports/pipe/entities"
	resolverport "github.com/chitacloud/pipefile/ports/resolver-port"
)

var (
	_ commandport.CommandPort        = (*DefaultCommandAdapter)(nil)
	_ commandport.CommandPortFactory = (*DefaultCommandAdapterFactory)(nil)
)

// DefaultCommandAdapter implements CommandPort using os/exec and an explicit pipe
type DefaultCommandAdapter struct {
	spec     pipeentities.CommandSpec
	redirect pipeentities.Redirection
	resolver resolverport.PathResolver
	log      *logger.Logger
	cmd      *exec.Cmd
	path     string
	stdin    io.WriteCloser
}

// DefaultCommandAdapterFactory implements CommandPortFactory
type DefaultCommandAdapterFactory struct {
	// Resolver looks up the program on PATH. Required.
	Resolver resolverport.PathResolver
}

// NewCommandPort creates a new DefaultCommandAdapter
func (f *DefaultCommandAdapterFactory) NewCommandPort(spec pipeentities.CommandSpec, redirect pipeentities.Redirection) (commandport.CommandPort, error) {
	if spec.Name == "" {
		return nil, pipeerrors.Usage("command cannot be empty")
	}
	if f.Resolver == nil {
		return nil, fmt.Errorf("command adapter factory has no path resolver")
	}

	return &DefaultCommandAdapter{
		spec:     spec,
		redirect: redirect,
		resolver: f.Resolver,
		log:      logger.Get().WithComponent("command-adapter"),
	}, nil
}

// Start wires the child's stdin to a fresh pipe, applies the file redirections
// on top of it, resolves the program and starts it.
func (c *DefaultCommandAdapter) Start() (err error) {
	if c.IsRunning() {
		return fmt.Errorf("command already started")
	}

	pr, pw, err := os.Pipe()
	if err != nil {
		return pipeerrors.Resource("create pipe", "", err)
	}
	// Parent copies of everything the child inherits. Closed once the child
	// holds its own duplicates, or on any failure below.
	inherited := []io.Closer{pr}
	defer func() {
		closeAll(inherited)
		if err != nil {
			pw.Close()
		}
	}()

	cmd := &exec.Cmd{
		Stdin:  pr,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}

	opened, err := Redirect(cmd, c.redirect)
	inherited = append(inherited, opened...)
	if err != nil {
		return err
	}

	path, err := c.resolver.FindAbsolutePath(c.spec.Name)
	if err != nil {
		return pipeerrors.Resolution(c.spec.Name, err)
	}
	cmd.Path = path
	cmd.Args = c.spec.Argv(path)

	if err := cmd.Start(); err != nil {
		return pipeerrors.Exec(path, err)
	}

	c.cmd = cmd
	c.path = path
	c.stdin = pw

	c.log.Debug("command started", logger.Fields(
		logger.FieldCommand, c.spec.String(),
		logger.FieldPath, path,
		logger.FieldPID, cmd.Process.Pid,
	))
	return nil
}

// Wait reaps the command. A normal exit yields its exit code and no error,
// whatever the code. Anything else yields -1 and a wait error.
func (c *DefaultCommandAdapter) Wait() (int, error) {
	if c.cmd == nil || c.cmd.Process == nil {
		return pipeerrors.WaitStatus, pipeerrors.Wait(fmt.Errorf("command not started"))
	}

	waitErr := c.cmd.Wait()
	state := c.cmd.ProcessState
	if state == nil {
		return pipeerrors.WaitStatus, pipeerrors.Wait(waitErr)
	}
	if !state.Exited() {
		return pipeerrors.WaitStatus, pipeerrors.Wait(fmt.Errorf("command did not exit normally: %s", state))
	}

	c.log.Debug("command exited", logger.Fields(logger.FieldExitCode, state.ExitCode()))
	return state.ExitCode(), nil
}

// Stop stops the command process
func (c *DefaultCommandAdapter) Stop() error {
	if c.cmd == nil || c.cmd.Process == nil {
		return fmt.Errorf("command not started")
	}

	if c.stdin != nil {
		c.stdin.Close()
	}

	if !c.IsRunning() {
		return nil
	}

	if err := c.cmd.Process.Kill(); err != nil {
		return err
	}

	// Wait for the process to finish - ignore error as process was killed
	c.cmd.Wait()
	return nil
}

// GetStdin returns the parent's write end of the pipe
func (c *DefaultCommandAdapter) GetStdin() io.WriteCloser {
	return c.stdin
}

// GetPath returns the resolved program path
func (c *DefaultCommandAdapter) GetPath() string {
	return c.path
}

// IsRunning returns true if the command was started and has not been reaped
func (c *DefaultCommandAdapter) IsRunning() bool {
	if c.cmd == nil || c.cmd.Process == nil {
		return false
	}
	return c.cmd.ProcessState == nil
}

func closeAll(closers []io.Closer) {
	for _, cl := range closers {
		cl.Close()
	}
}
