package defaultpathresolver

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/chitacloud/pipefile/internal/logger"
	resolverport "github.com/chitacloud/pipefile/ports/resolver-port"
)

var (
	_ resolverport.PathResolver = (*DefaultPathResolver)(nil)
)

// DefaultPathResolver implements PathResolver by probing PATH entries with access(2)
type DefaultPathResolver struct {
	log *logger.Logger
}

// NewDefaultPathResolver creates a resolver that reads PATH on every lookup
func NewDefaultPathResolver() *DefaultPathResolver {
	return &DefaultPathResolver{log: logger.Get().WithComponent("path-resolver")}
}

// FindAbsolutePath returns the first PATH candidate the caller may execute.
// Empty PATH entries are skipped. A missing PATH resolves nothing.
func (r *DefaultPathResolver) FindAbsolutePath(name string) (string, error) {
	pathEnv, ok := os.LookupEnv("PATH")
	if !ok {
		return "", resolverport.ErrNotFound
	}

	for _, dir := range splitPath(pathEnv) {
		candidate := filepath.Join(dir, name)
		if unix.Access(candidate, unix.X_OK) == nil {
			r.log.Debug("resolved command", logger.Fields(logger.FieldCommand, name, logger.FieldPath, candidate))
			return candidate, nil
		}
	}

	return "", resolverport.ErrNotFound
}

func splitPath(pathEnv string) []string {
	return strings.FieldsFunc(pathEnv, func(r rune) bool {
		return r == os.PathListSeparator
	})
}
