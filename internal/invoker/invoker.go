// SPDX-License-Identifier: MPL-2.0

package invoker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"cluster16s-cli/internal/config"
	"cluster16s-cli/pkg/types"
)

// DefaultScript is the pipeline entry point looked up when the caller
// does not name one.
const DefaultScript types.FilesystemPath = "./run.sh"

// ExecutionContext carries per-run execution state.
type ExecutionContext struct {
	// Context for cancellation. Interrupting it stops the child process.
	Context context.Context
	// Timeout bounds the run when positive; zero means no deadline.
	Timeout time.Duration
	// WorkDir is the child's working directory; empty inherits ours.
	WorkDir string
	// Stdout, Stderr and Stdin are wired straight to the child.
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
}

// NewExecutionContext creates an execution context wired to the
// process's standard streams.
func NewExecutionContext(ctx context.Context) *ExecutionContext {
	return &ExecutionContext{
		Context: ctx,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Stdin:   os.Stdin,
	}
}

// Invoker launches the pipeline script.
type Invoker struct {
	// Script is the path of the executable to launch.
	Script types.FilesystemPath
}

// New creates an Invoker for the given script path.
func New(script types.FilesystemPath) *Invoker {
	return &Invoker{Script: script}
}

// Available returns whether the script exists and is executable.
func (i *Invoker) Available() bool {
	_, err := exec.LookPath(string(i.Script))
	return err == nil
}

// Execute runs the script with the configuration as its argument vector
// and classifies the outcome. Arguments reach the child exactly as the
// caller supplied them; no shell sits in between.
func (i *Invoker) Execute(ectx *ExecutionContext, cfg *config.PipelineConfig) *Result {
	ctx := ectx.Context
	if ectx.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, ectx.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, string(i.Script), Argv(cfg)...)
	cmd.Dir = ectx.WorkDir
	cmd.Stdout = ectx.Stdout
	cmd.Stderr = ectx.Stderr
	cmd.Stdin = ectx.Stdin

	err := cmd.Run()
	if err == nil {
		return NewExitCodeResult(ExitSuccess)
	}

	// A context kill surfaces as *exec.ExitError too, so the context is
	// checked first.
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return NewErrorResult(ExitTimeout, FailureTimeout,
			fmt.Errorf("pipeline run exceeded the %s timeout", ectx.Timeout))
	case errors.Is(ctx.Err(), context.Canceled):
		return NewErrorResult(ExitCancelled, FailureCancelled,
			fmt.Errorf("pipeline run interrupted: %w", ctx.Err()))
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		return NewExitCodeResult(ExitCode(exitErr.ExitCode()))
	}

	return NewErrorResult(ExitLaunchFailure, FailureLaunch,
		fmt.Errorf("failed to launch pipeline script %s: %w", i.Script, err))
}
