package pipeerrors

import (
	"errors"
	"fmt"
)

// Kind is a machine-readable failure class.
type Kind string

const (
	KindUsage      Kind = "usage"
	KindConfig     Kind = "config"
	KindResource   Kind = "resource"
	KindResolution Kind = "resolution"
	KindExec       Kind = "exec"
	KindWait       Kind = "wait"
)

// WaitStatus is the exit status reported when the child could not be reaped
// or did not exit normally.
const WaitStatus = -1

// FailureStatus is the exit status for every other failure.
const FailureStatus = 1

// PipeError is the error type returned by every pipefile component.
type PipeError struct {
	// Kind classifies the failure.
	Kind Kind
	// Op names the failing operation, e.g. "open input file".
	Op string
	// Path is the file or program involved, if any.
	Path string
	// Err is the underlying cause.
	Err error
}

// Error returns "<op>: <cause>", or just the operation when there is no cause.
// Resolution failures name the command instead of the cause.
func (e *PipeError) Error() string {
	if e.Kind == KindResolution {
		return fmt.Sprintf("%s: %s", e.Op, e.Path)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Path)
	}
	return e.Op
}

// Unwrap returns the underlying cause of the error.
func (e *PipeError) Unwrap() error { return e.Err }

// Status returns the process exit status for this error.
func (e *PipeError) Status() int {
	if e.Kind == KindWait {
		return WaitStatus
	}
	return FailureStatus
}

// --- Constructors ---

// Usage creates an error for a malformed invocation.
func Usage(reason string) *PipeError {
	return &PipeError{Kind: KindUsage, Op: reason}
}

// Config creates an error for an invalid or unreadable configuration.
func Config(op string, cause error) *PipeError {
	return &PipeError{Kind: KindConfig, Op: op, Err: cause}
}

// Resource creates an error for a failed pipe, file or process resource.
func Resource(op, path string, cause error) *PipeError {
	return &PipeError{Kind: KindResource, Op: op, Path: path, Err: cause}
}

// Resolution creates an error for a command missing from every PATH entry.
func Resolution(name string, cause error) *PipeError {
	return &PipeError{Kind: KindResolution, Op: "command not found", Path: name, Err: cause}
}

// Exec creates an error for a program that could not be started.
func Exec(path string, cause error) *PipeError {
	return &PipeError{Kind: KindExec, Op: "start command", Path: path, Err: cause}
}

// Wait creates an error for a child that could not be reaped or was terminated abnormally.
func Wait(cause error) *PipeError {
	return &PipeError{Kind: KindWait, Op: "wait for command", Err: cause}
}

// --- Inspection ---

// AsPipeError extracts a *PipeError from the error chain.
func AsPipeError(err error) (*PipeError, bool) {
	var pe *PipeError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// IsKind reports whether err carries a PipeError of the given kind.
func IsKind(err error, kind Kind) bool {
	pe, ok := AsPipeError(err)
	return ok && pe.Kind == kind
}

// ExitStatus maps an error to the exit status of the pipefile process.
// Errors outside the taxonomy count as failures.
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}
	if pe, ok := AsPipeError(err); ok {
		return pe.Status()
	}
	return FailureStatus
}
