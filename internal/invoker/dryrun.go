// SPDX-License-Identifier: MPL-2.0

package invoker

import (
	"fmt"
	"strings"

	"cluster16s-cli/internal/config"
	"cluster16s-cli/pkg/types"

	"mvdan.cc/sh/v3/syntax"
)

// CommandLine renders the exact invocation as a copy-pasteable shell
// command. Rendering is display-only: the real launch passes the raw
// argument vector without any shell, so quoting here never affects what
// the child receives.
func CommandLine(script types.FilesystemPath, cfg *config.PipelineConfig) (string, error) {
	words := append([]string{string(script)}, Argv(cfg)...)
	quoted := make([]string, len(words))
	for i, w := range words {
		q, err := syntax.Quote(w, syntax.LangBash)
		if err != nil {
			return "", fmt.Errorf("failed to quote argument %q: %w", w, err)
		}
		quoted[i] = q
	}
	return strings.Join(quoted, " "), nil
}
