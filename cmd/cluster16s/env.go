// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"cluster16s-cli/internal/config"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the environment variable reference",
	Long: `Render the reference for every C16S_* environment variable: its
position in the downstream argument vector, the shape its value must
have, and what it controls.`,
	Args: cobra.NoArgs,
	RunE: runEnv,
}

func runEnv(cmd *cobra.Command, _ []string) error {
	md := envReferenceMarkdown()

	rendered, err := glamour.Render(md, "auto")
	if err != nil {
		// Fall back to the raw markdown rather than failing the command.
		fmt.Fprintln(cmd.OutOrStdout(), md)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}

// envReferenceMarkdown builds the reference from the key schema, so the
// docs can never drift from the wire contract.
func envReferenceMarkdown() string {
	var b strings.Builder

	b.WriteString("# Environment variable reference\n\n")
	b.WriteString("Every variable is required; an empty value counts as unset. ")
	b.WriteString("Values are forwarded to the pipeline script verbatim as positional ")
	b.WriteString("arguments, in the order listed here. A profile file can pre-seed ")
	b.WriteString("any of them; the environment always wins.\n")

	var current config.Group
	for i, spec := range config.Schema() {
		if spec.Group != current {
			current = spec.Group
			b.WriteString("\n## " + string(current) + "\n\n")
			b.WriteString("| # | Variable | Shape | Description |\n")
			b.WriteString("|---|----------|-------|-------------|\n")
		}
		fmt.Fprintf(&b, "| %d | `%s` | %s | %s |\n", i+1, spec.EnvVar(), kindDoc(spec.Kind), spec.Help)
	}

	return b.String()
}

// kindDoc names a value shape for the reference table.
func kindDoc(kind config.Kind) string {
	switch kind {
	case config.KindDirectory:
		return "existing directory"
	case config.KindFile:
		return "existing file"
	case config.KindInt:
		return "integer"
	case config.KindFloat:
		return "decimal > 0"
	case config.KindPrimer:
		return "IUPAC sequence"
	case config.KindFlag:
		return "true/false"
	case config.KindSelector:
		return "step selector"
	default:
		return "text"
	}
}
