// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for cluster16s.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"cluster16s-cli/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// Verbose enables verbose output
	verbose bool
	// profileFile allows specifying a custom profile file
	profileFile string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "cluster16s",
		Short: "Launcher for the 16S rRNA clustering pipeline",
		Long: TitleStyle.Render("cluster16s") + SubtitleStyle.Render(" - launcher for the 16S rRNA clustering pipeline") + `

cluster16s validates the pipeline configuration, logs every value it is
about to use, and hands the whole set to the downstream pipeline script
as positional arguments. The script's exit code is passed through
unchanged; launcher failures use their own reserved exit codes.

Configuration comes from C16S_* environment variables, optionally
pre-seeded by a CUE profile file. Every key is required; nothing is
defaulted or skipped.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Run 'cluster16s config init' to create a starter profile
  2. Point C16S_INPUT_DIR and the other path variables at your data
  3. Launch with: cluster16s run

` + SubtitleStyle.Render("Examples:") + `
  cluster16s run                 Validate, log and launch ./run.sh
  cluster16s run --dry-run       Print the exact command line instead
  cluster16s validate            Check the configuration and exit
  cluster16s config show         Show every key, value and source
  cluster16s env                 Show the environment variable reference`,
	}
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&profileFile, "profile", "", "profile file (default is $HOME/.config/cluster16s/profile.cue)")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(envCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// showIssue renders an issue card to stderr. Rendering problems are
// swallowed; the primary error message has already been produced.
func showIssue(id issue.Id) {
	i := issue.Get(id)
	if i == nil {
		return
	}
	rendered, err := i.Render("auto")
	if err != nil {
		return
	}
	fmt.Fprintln(os.Stderr, rendered)
}

// GetVerbose returns the verbose flag value
func GetVerbose() bool {
	return verbose
}
