// SPDX-License-Identifier: MPL-2.0

package invoker

// Failure classifies why a run did not complete normally.
type Failure int

const (
	// FailureNone means the script ran to completion; ExitCode carries
	// its status, zero or not.
	FailureNone Failure = iota
	// FailureLaunch means the script could not be started.
	FailureLaunch
	// FailureTimeout means the caller's deadline expired mid-run.
	FailureTimeout
	// FailureCancelled means the run was interrupted.
	FailureCancelled
)

// Result is the outcome of one invocation.
type Result struct {
	// ExitCode is the downstream script's exit code for completed runs,
	// or the reserved launcher code for launch/timeout/cancel failures.
	ExitCode ExitCode
	// Failure classifies launcher-level failures; FailureNone for
	// completed runs.
	Failure Failure
	// Error holds the underlying cause for launcher-level failures.
	Error error
}

// Success returns true when the script completed with exit code 0.
func (r *Result) Success() bool {
	return r.Failure == FailureNone && r.ExitCode.IsSuccess()
}

// NewErrorResult creates a Result for a launcher-level failure.
func NewErrorResult(code ExitCode, failure Failure, err error) *Result {
	return &Result{ExitCode: code, Failure: failure, Error: err}
}

// NewExitCodeResult creates a Result for a completed run. Use this for
// non-zero exits that represent normal downstream termination rather
// than launcher failures.
func NewExitCodeResult(code ExitCode) *Result {
	return &Result{ExitCode: code}
}
