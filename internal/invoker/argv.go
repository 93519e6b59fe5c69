// SPDX-License-Identifier: MPL-2.0

package invoker

import "cluster16s-cli/internal/config"

// Argv builds the downstream positional argument vector: one argument
// per configuration key, verbatim, in schema order. The script receives
// exactly these 22 arguments every run; the position of each value is
// the contract between launcher and script.
func Argv(cfg *config.PipelineConfig) []string {
	specs := config.Schema()
	args := make([]string, len(specs))
	for i, spec := range specs {
		args[i] = cfg.Value(spec.Key)
	}
	return args
}
