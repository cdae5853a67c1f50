package adapters

import (
	"context"
	"os/exec"

	"snowstage-sync/internal/ports"
)

// ExecRunner executes commands through os/exec, returning combined
// stdout and stderr.
type ExecRunner struct{}

func NewExecRunner() ExecRunner {
	return ExecRunner{}
}

func (r ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.CombinedOutput()
}

var _ ports.CommandRunner = ExecRunner{}
