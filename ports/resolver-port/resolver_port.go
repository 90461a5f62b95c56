package resolverport

import "errors"

//go:generate mockgen -source=resolver_port.go -destination=../../mocks/mock_resolver_port.go -package=mocks

// ErrNotFound is returned when no PATH entry holds an executable with the given name.
var ErrNotFound = errors.New("not found")

// PathResolver resolves a bare command name against the PATH search list
type PathResolver interface {
	// FindAbsolutePath returns the first executable candidate in PATH order
	FindAbsolutePath(name string) (string, error)
}
