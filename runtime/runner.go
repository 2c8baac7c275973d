package runtime

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// ExecResult represents the result of one external process invocation.
type ExecResult struct {
	// ExitCode is the process exit code.
	ExitCode int
	// CombinedOutput is stdout and stderr interleaved. Ordering between
	// the two streams is best-effort. Captured for diagnostic logging
	// only; never part of the render outcome.
	CombinedOutput []byte
}

// ProcessRunner invokes one shell-interpreted command and blocks until it
// terminates. Implementations must be safe for concurrent use.
//
// A non-zero exit status is NOT an error: it is reported through
// ExecResult.ExitCode. The error return is reserved for failure to run the
// command at all (shell unavailable, fork failure), which is fatal to the
// request and never classified.
type ProcessRunner interface {
	Run(ctx context.Context, command string) (*ExecResult, error)
}

// ShellRunner runs commands through the system shell.
type ShellRunner struct {
	// Shell is the shell executable. Defaults to "sh" when empty.
	Shell string
}

// Run executes command as `sh -c command`, capturing stdout and stderr into
// one combined stream.
func (r *ShellRunner) Run(ctx context.Context, command string) (*ExecResult, error) {
	shell := r.Shell
	if shell == "" {
		shell = "sh"
	}

	cmd := exec.CommandContext(ctx, shell, "-c", command)
	output, err := cmd.CombinedOutput()

	result := &ExecResult{CombinedOutput: output}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("failed to run %q: %w", command, err)
		}
		result.ExitCode = exitErr.ExitCode()
	}
	return result, nil
}
