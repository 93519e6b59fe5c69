// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"cluster16s-cli/internal/config"
	"cluster16s-cli/internal/invoker"
	"cluster16s-cli/pkg/types"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configuration without launching anything",
	Long: `Load and validate the full configuration exactly as 'run' would, then
exit. Reports every missing key and every invalid value in one pass.
Exit code 0 means a subsequent 'run' would reach the launch step.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&runScript, "script", string(invoker.DefaultScript), "pipeline script to check for")
}

func runValidate(cmd *cobra.Command, _ []string) error {
	_, err := config.NewProvider().Load(cmd.Context(), config.LoadOptions{ProfilePath: profileFile})
	if err != nil {
		return configExitError(err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, SuccessStyle.Render("✓")+" configuration is complete and valid")

	if invoker.New(types.FilesystemPath(runScript)).Available() {
		fmt.Fprintln(out, SuccessStyle.Render("✓")+" pipeline script "+CmdStyle.Render(runScript)+" is executable")
	} else {
		fmt.Fprintln(out, WarningStyle.Render("!")+" pipeline script "+CmdStyle.Render(runScript)+" was not found; 'run' would fail to launch")
	}

	return nil
}
