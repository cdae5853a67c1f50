package ports

import "context"

// CommandRunner executes an external command and returns its combined
// stdout/stderr. Implementations return a non-nil error on non-zero
// exit; the output is returned either way so callers can surface it.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}
