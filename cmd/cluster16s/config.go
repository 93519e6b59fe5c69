// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"cluster16s-cli/internal/config"
	"cluster16s-cli/internal/issue"

	"github.com/spf13/cobra"
)

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Inspect and manage the launcher configuration",
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show every configuration key, its value and its source",
		Long: `Show the merged view of every configuration key: the environment
variable that sets it, its current value, and whether the value came
from the environment, the profile file, or is still unset. Values are
shown as-is without validation; use 'validate' for that.`,
		Args: cobra.NoArgs,
		RunE: runConfigShow,
	}

	configInitCmd = &cobra.Command{
		Use:   "init [path]",
		Short: "Create a starter profile file",
		Long: `Write a commented starter profile with workable parameter defaults.
Without a path argument the profile goes to the user-level location
(e.g. ~/.config/cluster16s/profile.cue). Never overwrites an existing
file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runConfigInit,
	}
)

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	res, err := config.NewProvider().Resolve(cmd.Context(), config.LoadOptions{ProfilePath: profileFile})
	if err != nil {
		return configExitError(err)
	}

	out := cmd.OutOrStdout()
	if res.ProfilePath != "" {
		fmt.Fprintln(out, SubtitleStyle.Render("profile: "+res.ProfilePath))
	} else {
		fmt.Fprintln(out, SubtitleStyle.Render("profile: (none)"))
	}

	var current config.Group
	for _, rv := range res.Values {
		if rv.Spec.Group != current {
			current = rv.Spec.Group
			fmt.Fprintln(out)
			fmt.Fprintln(out, TitleStyle.Render(string(current)))
		}

		value := rv.Value
		if rv.Source == config.SourceUnset {
			value = WarningStyle.Render("(unset)")
		}
		fmt.Fprintf(out, "  %-28s %-34s %-12s %s\n",
			rv.Spec.Key, rv.Spec.EnvVar(), rv.Source, value)
	}

	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	} else {
		var err error
		path, err = config.DefaultProfilePath()
		if err != nil {
			return issue.WrapWithOperation(err, "locate the profile directory")
		}
	}

	if err := config.WriteStarterProfile(path); err != nil {
		return issue.NewErrorContext().
			WithOperation("write starter profile").
			WithResource(path).
			WithSuggestion("Pass an explicit path: cluster16s config init ./cluster16s.cue").
			Wrap(err).
			BuildError()
	}

	fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("✓")+" wrote starter profile to "+CmdStyle.Render(path))
	return nil
}
