package fail2ban

import (
	"bytes"
	"context"
	"os/exec"
)

// Runner executes an external command with an explicit argument vector and
// returns captured stdout and stderr. Arguments travel as separate argv
// elements; nothing here ever goes through a shell.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error)
}

// Ensure ExecRunner implements Runner interface
var _ Runner = (*ExecRunner)(nil)

// ExecRunner runs commands on the local system via os/exec. The command is
// killed when the context is cancelled or its deadline passes.
type ExecRunner struct{}

// NewExecRunner creates a runner backed by os/exec.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}
