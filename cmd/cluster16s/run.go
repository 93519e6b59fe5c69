// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"cluster16s-cli/internal/config"
	"cluster16s-cli/internal/invoker"
	"cluster16s-cli/internal/issue"
	"cluster16s-cli/internal/report"
	"cluster16s-cli/pkg/types"

	"github.com/spf13/cobra"
)

var (
	// runScript is the pipeline script path.
	runScript string
	// runTimeout bounds the whole run; zero means no deadline.
	runTimeout time.Duration
	// runWorkDir is the child's working directory.
	runWorkDir string
	// runDryRun prints the command line instead of executing it.
	runDryRun bool

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Validate the configuration and launch the pipeline script",
		Long: `Validate the full configuration, log every value grouped under Inputs
and Parameters, then launch the pipeline script with all values as
positional arguments in their fixed order.

The script's exit code becomes this command's exit code. Reserved codes
mark launcher failures: 81 missing configuration, 82 invalid
configuration, 83 launch failure, 84 timeout, 85 interrupted.`,
		Args: cobra.NoArgs,
		RunE: runRun,
	}
)

func init() {
	runCmd.Flags().StringVar(&runScript, "script", string(invoker.DefaultScript), "pipeline script to launch")
	runCmd.Flags().DurationVar(&runTimeout, "timeout", 0, "abort the run after this duration (e.g. 6h); 0 disables")
	runCmd.Flags().StringVar(&runWorkDir, "workdir", "", "working directory for the pipeline script")
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "print the exact command line without executing it")
}

func runRun(cmd *cobra.Command, _ []string) error {
	cfg, err := config.NewProvider().Load(cmd.Context(), config.LoadOptions{ProfilePath: profileFile})
	if err != nil {
		return configExitError(err)
	}

	script := types.FilesystemPath(runScript)
	if runDryRun {
		line, err := invoker.CommandLine(script, cfg)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
		return nil
	}

	inv := invoker.New(script)
	if !inv.Available() {
		showIssue(issue.PipelineScriptNotFoundId)
		return &ExitError{
			Code: invoker.ExitLaunchFailure,
			Err: issue.NewErrorContext().
				WithOperation("launch pipeline script").
				WithResource(runScript).
				WithSuggestion("Check the script exists and is executable").
				BuildError(),
		}
	}

	rep := report.New(os.Stderr)
	if debug, err := cfg.Debug.Bool(); err == nil && debug {
		rep.SetDebug(true)
	}

	rep.Started(runScript)
	rep.Config(cfg)

	ectx := invoker.NewExecutionContext(cmd.Context())
	ectx.Timeout = runTimeout
	ectx.WorkDir = runWorkDir

	result := inv.Execute(ectx, cfg)
	rep.Completed(result)

	return resultExitError(result)
}

// configExitError maps a config load failure to the right reserved exit
// code and shows the matching help card. When keys are both missing and
// invalid, the missing set decides the code.
func configExitError(err error) error {
	fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))

	switch {
	case errors.Is(err, config.ErrMissingConfig):
		showIssue(issue.MissingConfigId)
		return &ExitError{Code: invoker.ExitMissingConfig, Err: err}
	case errors.Is(err, config.ErrInvalidConfig):
		showIssue(issue.InvalidConfigId)
		return &ExitError{Code: invoker.ExitInvalidConfig, Err: err}
	default:
		showIssue(issue.ProfileParseErrorId)
		return &ExitError{Code: invoker.ExitInvalidConfig, Err: err}
	}
}

// resultExitError maps an invocation result to the command's error
// return: nil on success, otherwise an ExitError carrying the code.
func resultExitError(result *invoker.Result) error {
	if result.Success() {
		return nil
	}

	switch result.Failure {
	case invoker.FailureLaunch:
		showIssue(issue.PipelineScriptNotFoundId)
	case invoker.FailureTimeout:
		showIssue(issue.RunTimedOutId)
	case invoker.FailureCancelled:
		showIssue(issue.RunInterruptedId)
	default:
		// The child ran and failed on its own terms. The big help card
		// only appears in verbose mode; the exit code says the rest.
		if verbose {
			showIssue(issue.DownstreamFailedId)
		}
	}

	return &ExitError{Code: result.ExitCode, Err: result.Error}
}
